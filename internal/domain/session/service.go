// Package session - контроллер сессии: держит активного пользователя,
// рабочие копии настроек и записей, флаг ожидания комментария и
// направляет действия пользователя в калькулятор, генератор и хранилище.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"moyudiary/internal/domain/comment"
	"moyudiary/internal/domain/earnings"
	"moyudiary/internal/domain/moyulog"
	"moyudiary/internal/domain/settings"
)

type Servicer interface {
	Restore(ctx context.Context) (Session, bool)
	Login(ctx context.Context, username string) (Session, error)
	Logout(ctx context.Context, sess Session) error
	Current() (Session, bool)
	Status() Status
	Settings(sess Session) (settings.Settings, error)
	SaveSettings(ctx context.Context, sess Session, st settings.Settings) (settings.Settings, error)
	Logs(sess Session) ([]moyulog.Log, error)
	LogAction(ctx context.Context, sess Session, typ moyulog.Type) (ActionResult, error)
	ClearLogs(ctx context.Context, sess Session) error
	Snapshot(sess Session) (earnings.Snapshot, error)
	Subscribe() (<-chan settings.Settings, func())
}

// Status - наблюдаемое состояние контроллера.
type Status struct {
	State  State  `json:"state"`
	Phase  Phase  `json:"phase"`
	UserID string `json:"userId,omitempty"`
}

type ActionResult struct {
	Log     moyulog.Log
	Outcome comment.Outcome
}

type Service struct {
	repo     Repository
	comments comment.Generator
	now      func() time.Time
	log      *slog.Logger

	mu       sync.Mutex
	state    State
	phase    Phase
	epoch    uint64
	userID   string
	settings settings.Settings
	logs     []moyulog.Log

	subs    map[int]chan settings.Settings
	nextSub int
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, comments comment.Generator, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		comments: comments,
		now:      time.Now,
		log:      log.With(slog.String("component", "session")),
		subs:     make(map[int]chan settings.Settings),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.settings = settings.Default(s.now())
	s.logs = []moyulog.Log{}
	return s
}

// Restore поднимает сохраненную сессию при старте процесса.
func (s *Service) Restore(ctx context.Context) (Session, bool) {
	userID, ok := s.repo.CurrentUser(ctx)
	if !ok {
		return Session{}, false
	}

	st := s.repo.Settings(ctx, userID)
	logs := s.repo.Logs(ctx, userID)

	s.mu.Lock()
	sess := s.enterLocked(userID, st, logs)
	s.mu.Unlock()

	s.log.Info("session restored", slog.String("user", userID))
	s.publish(st)
	return sess, true
}

// Login делает username активным пользователем и загружает его данные.
func (s *Service) Login(ctx context.Context, username string) (Session, error) {
	userID := strings.TrimSpace(username)
	if userID == "" {
		return Session{}, ErrEmptyUsername
	}

	s.mu.Lock()
	prev := s.state
	s.state = StateLoggingIn
	s.mu.Unlock()

	if err := s.repo.SetCurrentUser(ctx, userID); err != nil {
		s.mu.Lock()
		s.state = prev
		s.mu.Unlock()
		return Session{}, fmt.Errorf("login: %w", err)
	}

	st := s.repo.Settings(ctx, userID)
	logs := s.repo.Logs(ctx, userID)

	s.mu.Lock()
	sess := s.enterLocked(userID, st, logs)
	s.mu.Unlock()

	s.log.Info("user logged in", slog.String("user", userID), slog.Int("logs", len(logs)))
	s.publish(st)
	return sess, nil
}

// Logout сбрасывает рабочие копии и указатель сессии. Данные пользователя
// в хранилище не трогаются.
func (s *Service) Logout(ctx context.Context, sess Session) error {
	s.mu.Lock()
	if !s.validLocked(sess) {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	s.epoch++
	s.state = StateLoggedOut
	s.phase = PhaseIdle
	s.userID = ""
	s.settings = settings.Default(s.now())
	s.logs = []moyulog.Log{}
	st := s.settings
	s.mu.Unlock()

	s.publish(st)

	if err := s.repo.LogoutUser(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info("user logged out", slog.String("user", sess.UserID))
	return nil
}

func (s *Service) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoggedIn {
		return Session{}, false
	}
	return Session{UserID: s.userID, epoch: s.epoch}, true
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{State: s.state, Phase: s.phase, UserID: s.userID}
}

func (s *Service) Settings(sess Session) (settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.validLocked(sess) {
		return settings.Settings{}, ErrNotLoggedIn
	}
	return s.settings, nil
}

// SaveSettings нормализует и сохраняет настройки, затем оповещает подписчиков.
func (s *Service) SaveSettings(ctx context.Context, sess Session, st settings.Settings) (settings.Settings, error) {
	if !s.valid(sess) {
		return settings.Settings{}, ErrNotLoggedIn
	}

	st = st.Normalize()
	if err := s.repo.SaveSettings(ctx, sess.UserID, st); err != nil {
		return settings.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	s.mu.Lock()
	if !s.validLocked(sess) {
		s.mu.Unlock()
		return settings.Settings{}, ErrNotLoggedIn
	}
	s.settings = st
	s.mu.Unlock()

	s.publish(st)
	return st, nil
}

// Logs возвращает копию рабочего списка записей, новые первыми.
func (s *Service) Logs(sess Session) ([]moyulog.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.validLocked(sess) {
		return nil, ErrNotLoggedIn
	}
	out := make([]moyulog.Log, len(s.logs))
	copy(out, s.logs)
	return out, nil
}

// LogAction фиксирует заработок на момент действия, запрашивает комментарий
// и сохраняет новую запись. Пока комментарий не получен, повторный вызов
// возвращает ErrBusy. Флаг ожидания снимается при любом исходе.
func (s *Service) LogAction(ctx context.Context, sess Session, typ moyulog.Type) (ActionResult, error) {
	if err := typ.Validate(); err != nil {
		return ActionResult{}, err
	}

	s.mu.Lock()
	if !s.validLocked(sess) {
		s.mu.Unlock()
		return ActionResult{}, ErrNotLoggedIn
	}
	if s.phase == PhaseAwaitingComment {
		s.mu.Unlock()
		return ActionResult{}, ErrBusy
	}
	s.phase = PhaseAwaitingComment
	st := s.settings
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.epoch == sess.epoch {
			s.phase = PhaseIdle
		}
		s.mu.Unlock()
	}()

	at := s.now()
	earned, _ := earnings.EarnedSoFar(st, at)

	res := s.comments.Generate(ctx, typ.Label(), st)
	if res.Outcome != comment.OutcomeGenerated {
		s.log.Debug("comment degraded", slog.String("user", sess.UserID), slog.String("outcome", string(res.Outcome)))
	}

	entry := moyulog.New(typ, at, res.Text, earned)
	if err := s.repo.SaveLog(ctx, sess.UserID, entry); err != nil {
		return ActionResult{}, fmt.Errorf("log action: %w", err)
	}

	// Тот же пользователь мог выйти и войти заново, пока ждали комментарий:
	// его рабочий список загружен до сохранения и должен получить запись.
	s.mu.Lock()
	if s.state == StateLoggedIn && s.userID == sess.UserID && !hasLog(s.logs, entry.ID) {
		s.logs = append([]moyulog.Log{entry}, s.logs...)
	}
	s.mu.Unlock()

	return ActionResult{Log: entry, Outcome: res.Outcome}, nil
}

func (s *Service) ClearLogs(ctx context.Context, sess Session) error {
	if !s.valid(sess) {
		return ErrNotLoggedIn
	}
	if err := s.repo.ClearLogs(ctx, sess.UserID); err != nil {
		return fmt.Errorf("clear logs: %w", err)
	}

	s.mu.Lock()
	if s.epoch == sess.epoch {
		s.logs = []moyulog.Log{}
	}
	s.mu.Unlock()
	return nil
}

// Snapshot - показатели главного экрана на текущий момент.
func (s *Service) Snapshot(sess Session) (earnings.Snapshot, error) {
	st, err := s.Settings(sess)
	if err != nil {
		return earnings.Snapshot{}, err
	}
	return earnings.Take(st, s.now()), nil
}

// Subscribe возвращает канал с актуальными настройками после каждого
// изменения. Медленный подписчик получает только последнее значение.
// Функцию отписки нужно вызвать обязательно.
func (s *Service) Subscribe() (<-chan settings.Settings, func()) {
	ch := make(chan settings.Settings, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Service) publish(st settings.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- st
	}
}

func (s *Service) enterLocked(userID string, st settings.Settings, logs []moyulog.Log) Session {
	s.epoch++
	s.state = StateLoggedIn
	s.phase = PhaseIdle
	s.userID = userID
	s.settings = st
	s.logs = logs
	return Session{UserID: userID, epoch: s.epoch}
}

func hasLog(logs []moyulog.Log, id string) bool {
	for _, l := range logs {
		if l.ID == id {
			return true
		}
	}
	return false
}

func (s *Service) valid(sess Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validLocked(sess)
}

func (s *Service) validLocked(sess Session) bool {
	return s.state == StateLoggedIn && sess.Valid() && sess.epoch == s.epoch && sess.UserID == s.userID
}
