// Package store хранит указатель активной сессии, настройки и записи
// пользователей в строковом хранилище ключ-значение.
//
// Чтения никогда не возвращают ошибку: битые или отсутствующие данные
// заменяются значениями по умолчанию (настройки) или пустым списком (записи).
// SaveLog выполняет чтение-изменение-запись и корректен только при одном
// писателе на пользователя.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"moyudiary/internal/domain/moyulog"
	"moyudiary/internal/domain/settings"
	"moyudiary/internal/infrastructure/storage"
)

type Store struct {
	kv     storage.KV
	prefix string
	now    func() time.Time
	log    *slog.Logger
}

type Option func(*Store)

// WithPrefix задает префикс пользовательских ключей.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithClock подменяет источник времени (нужен для даты праздника по умолчанию).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(kv storage.KV, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		prefix: DefaultPrefix,
		now:    time.Now,
		log:    log.With(slog.String("component", "store")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentUser возвращает активного пользователя, если он есть.
func (s *Store) CurrentUser(ctx context.Context) (string, bool) {
	v, err := s.kv.Get(ctx, CurrentUserKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("read current user", slog.String("error", err.Error()))
		}
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}

func (s *Store) SetCurrentUser(ctx context.Context, userID string) error {
	if err := s.kv.Set(ctx, CurrentUserKey, userID); err != nil {
		return fmt.Errorf("set current user: %w", err)
	}
	return nil
}

// LogoutUser очищает только указатель сессии, данные пользователя остаются.
func (s *Store) LogoutUser(ctx context.Context) error {
	if err := s.kv.Remove(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Settings возвращает настройки пользователя, наложенные на значения по умолчанию.
func (s *Store) Settings(ctx context.Context, userID string) settings.Settings {
	raw, err := s.kv.Get(ctx, s.settingsKey(userID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("read settings", slog.String("user", userID), slog.String("error", err.Error()))
		}
		return settings.Default(s.now())
	}
	return settings.Merge([]byte(raw), s.now())
}

// SaveSettings полностью перезаписывает настройки.
func (s *Store) SaveSettings(ctx context.Context, userID string, st settings.Settings) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.kv.Set(ctx, s.settingsKey(userID), string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Logs возвращает записи пользователя, новые первыми.
func (s *Store) Logs(ctx context.Context, userID string) []moyulog.Log {
	raw, err := s.kv.Get(ctx, s.logsKey(userID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("read logs", slog.String("user", userID), slog.String("error", err.Error()))
		}
		return []moyulog.Log{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("malformed logs, ignoring", slog.String("user", userID), slog.String("error", err.Error()))
		return []moyulog.Log{}
	}

	logs := make([]moyulog.Log, 0, len(items))
	for _, item := range items {
		var l moyulog.Log
		if err := json.Unmarshal(item, &l); err != nil || l.ID == "" {
			s.log.Debug("skip malformed log entry", slog.String("user", userID))
			continue
		}
		logs = append(logs, l)
	}
	return logs
}

// SaveLog добавляет запись в начало списка и сохраняет список целиком.
func (s *Store) SaveLog(ctx context.Context, userID string, l moyulog.Log) error {
	logs := append([]moyulog.Log{l}, s.Logs(ctx, userID)...)

	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("marshal logs: %w", err)
	}
	if err := s.kv.Set(ctx, s.logsKey(userID), string(data)); err != nil {
		return fmt.Errorf("save log: %w", err)
	}
	return nil
}

// ClearLogs удаляет список записей целиком.
func (s *Store) ClearLogs(ctx context.Context, userID string) error {
	if err := s.kv.Remove(ctx, s.logsKey(userID)); err != nil {
		return fmt.Errorf("clear logs: %w", err)
	}
	return nil
}
