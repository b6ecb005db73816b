package storage

import (
	"context"
	"errors"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var ErrNotFound = errors.New("key not found")

// KV - строковое хранилище ключ-значение, на котором построено локальное
// хранение настроек и записей.
type KV interface {
	// Get возвращает ErrNotFound, если ключа нет.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Remove не считает отсутствие ключа ошибкой.
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
