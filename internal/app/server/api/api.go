// GET    /api/v1/health     # Состояние сервиса (публичный)
// GET    /api/v1/session    # Состояние сессии (публичный)
// POST   /api/v1/session    # Вход по имени (публичный)
// DELETE /api/v1/session    # Выход (сессия)
// GET    /api/v1/settings   # Настройки (сессия)
// PUT    /api/v1/settings   # Сохранить настройки (сессия)
// GET    /api/v1/logs       # Записи (сессия)
// POST   /api/v1/logs       # Отметить перерыв (сессия)
// DELETE /api/v1/logs       # Очистить записи (сессия)
// GET    /api/v1/dashboard  # Главный экран (сессия)

package api

import (
	dashboardAPI "moyudiary/internal/app/server/api/http/dashboard"
	healthAPI "moyudiary/internal/app/server/api/http/health"
	logsAPI "moyudiary/internal/app/server/api/http/logs"
	"moyudiary/internal/app/server/api/http/middleware"
	"moyudiary/internal/app/server/api/http/middleware/auth"
	"moyudiary/internal/app/server/api/http/middleware/logger"
	sessionAPI "moyudiary/internal/app/server/api/http/session"
	settingsAPI "moyudiary/internal/app/server/api/http/settings"
	"moyudiary/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health    *healthAPI.Handler
	Session   *sessionAPI.Handler
	Settings  *settingsAPI.Handler
	Logs      *logsAPI.Handler
	Dashboard *dashboardAPI.Handler
}

// New создает *chi.Mux с общими мидлварями и всеми операциями API.
// Страницы регистрируются на том же роутере отдельно.
func New(sessions session.Servicer, storage healthAPI.Pinger, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Moyu Diary API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(sessions, storage, log)
	h.Health.SetupRoutes(API)
	h.Session.SetupRoutes(API)
	h.Settings.SetupRoutes(API)
	h.Logs.SetupRoutes(API)
	h.Dashboard.SetupRoutes(API)

	return mux
}

func handlers(sessions session.Servicer, storage healthAPI.Pinger, log *slog.Logger) *Handlers {
	chains := middleware.NewChains(logger.New(log).Middleware(), auth.New(sessions, log).Middleware())

	return &Handlers{
		Health:    healthAPI.NewHandler(storage, sessions, log, chains.Public()),
		Session:   sessionAPI.NewHandler(sessions, log, chains.Public(), chains.Protected()),
		Settings:  settingsAPI.NewHandler(sessions, log, chains.Protected()),
		Logs:      logsAPI.NewHandler(sessions, log, chains.Protected()),
		Dashboard: dashboardAPI.NewHandler(sessions, log, chains.Protected()),
	}
}
