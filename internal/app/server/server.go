// Package server собирает приложение: хранилище, генератор комментариев,
// контроллер сессии, API и страницы на одном HTTP сервере.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/exp/slog"

	"moyudiary/internal/app/server/api"
	"moyudiary/internal/app/server/web"
	"moyudiary/internal/config"
	"moyudiary/internal/domain/comment"
	"moyudiary/internal/domain/session"
	"moyudiary/internal/domain/store"
	"moyudiary/internal/infrastructure/gemini"
	"moyudiary/internal/infrastructure/migration"
	"moyudiary/internal/infrastructure/storage"
	"moyudiary/internal/infrastructure/storage/memory"
	"moyudiary/internal/infrastructure/storage/postgres"
	"moyudiary/internal/infrastructure/storage/sqlite"
)

type App struct {
	cfg      *config.Config
	log      *slog.Logger
	storage  storage.KV
	sessions *session.Service
	handler  http.Handler
	server   *http.Server

	cancelBase context.CancelFunc
}

// OpenStorage открывает хранилище выбранного драйвера. Для sqlite и postgres
// миграции применяются при открытии.
func OpenStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case storage.DriverSQLite:
		return sqlite.New(cfg.Storage.DataPath, log)
	case storage.DriverPostgres:
		return postgres.New(ctx, cfg.Storage.DatabaseURI, log)
	case storage.DriverMemory:
		log.Warn("in-memory storage: data is lost on exit")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Migrate применяет встроенные миграции без запуска сервера.
func Migrate(cfg *config.Config, log *slog.Logger) error {
	switch cfg.Storage.Driver {
	case storage.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.DataPath), 0o700); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		return migration.NewMigration(migration.DialectSQLite, migration.SQLiteURL(cfg.Storage.DataPath), nil).Up()
	case storage.DriverPostgres:
		return migration.NewMigration(migration.DialectPostgres, cfg.Storage.DatabaseURI, nil).Up()
	case storage.DriverMemory:
		log.Info("memory storage has no schema, nothing to migrate")
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	kv, err := OpenStorage(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	st := store.New(kv, log, store.WithPrefix(cfg.Storage.KeyPrefix))
	provider := gemini.New(gemini.Config{
		APIKey:  cfg.Comment.APIKey,
		BaseURL: cfg.Comment.BaseURL,
		Model:   cfg.Comment.Model,
	}, log)
	comments := comment.NewService(provider, cfg.Comment.Timeout, log)
	sessions := session.NewService(st, comments, log)

	if sess, ok := sessions.Restore(ctx); ok {
		log.Info("Сессия восстановлена", slog.String("user", sess.UserID))
	}

	mux := api.New(sessions, kv, log)
	pages, err := web.NewHandler(sessions, log, web.WithTickInterval(cfg.Ticker.Interval))
	if err != nil {
		closeStorage(kv, log)
		return nil, fmt.Errorf("init pages: %w", err)
	}
	pages.SetupRoutes(mux)

	baseCtx, cancelBase := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:        cfg.Server.RunAddress,
		Handler:     mux,
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}
	// Потоки SSE не завершаются сами, их нужно оборвать до ожидания Shutdown.
	srv.RegisterOnShutdown(cancelBase)

	return &App{
		cfg:        cfg,
		log:        log,
		storage:    kv,
		sessions:   sessions,
		handler:    mux,
		server:     srv,
		cancelBase: cancelBase,
	}, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) Sessions() session.Servicer {
	return a.sessions
}

// Run обслуживает запросы до отмены ctx или сигнала завершения.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.handleSignals(ctx, cancel)

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		a.log.Info("Сервер запущен", slog.String("address", a.cfg.Server.RunAddress))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen %s: %w", a.cfg.Server.RunAddress, err)
		}
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.Info("Завершение работы сервера...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info("Сервер остановлен")
	return nil
}

func (a *App) handleSignals(ctx context.Context, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		a.log.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
		cancel()
	case <-ctx.Done():
	}
}

func closeStorage(kv storage.KV, log *slog.Logger) {
	if err := kv.Close(); err != nil {
		log.Error("Ошибка закрытия хранилища", slog.String("error", err.Error()))
	}
}

// Close освобождает хранилище. Вызывается после Run.
func (a *App) Close() error {
	a.cancelBase()
	return a.storage.Close()
}
