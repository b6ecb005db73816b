// Package web отдает четыре экрана приложения (вход, главная, записи,
// настройки) и поток SSE с показателями главного экрана.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"moyudiary/internal/app/server/api/http/middleware/auth"
	"moyudiary/internal/app/server/api/http/middleware/logger"
	"moyudiary/internal/domain/session"
	"moyudiary/internal/domain/ticker"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageLogin    = "login.html"
	pageHome     = "home.html"
	pageHistory  = "history.html"
	pageSettings = "settings.html"
)

type Handler struct {
	sessions session.Servicer
	auth     *auth.Auth
	access   *logger.Logger
	pages    map[string]*template.Template
	tick     time.Duration
	loc      *time.Location
	log      *slog.Logger
}

type Option func(*Handler)

// WithTickInterval задает период обновления потока SSE.
func WithTickInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.tick = d
		}
	}
}

// WithLocation задает зону, в которой записи группируются по дням.
func WithLocation(loc *time.Location) Option {
	return func(h *Handler) {
		h.loc = loc
	}
}

func NewHandler(sessions session.Servicer, log *slog.Logger, opts ...Option) (*Handler, error) {
	h := &Handler{
		sessions: sessions,
		auth:     auth.New(sessions, log),
		access:   logger.New(log),
		tick:     ticker.DefaultInterval,
		loc:      time.Local,
		log:      log.With(slog.String("component", "web")),
	}
	for _, opt := range opts {
		opt(h)
	}

	pages, err := parsePages(h.loc)
	if err != nil {
		return nil, err
	}
	h.pages = pages
	return h, nil
}

func (h *Handler) SetupRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.access.Handler)

		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.Proceed("/login"))

			r.Get("/", h.home)
			r.Post("/logout", h.logout)
			r.Post("/actions/{type}", h.logAction)
			r.Get("/history", h.history)
			r.Post("/history/clear", h.clearHistory)
			r.Get("/settings", h.settingsPage)
			r.Post("/settings", h.saveSettings)
			r.Get("/events/earnings", h.earningsEvents)
		})
	})
}

func parsePages(loc *time.Location) (map[string]*template.Template, error) {
	funcs := templateFuncs(loc)
	pages := make(map[string]*template.Template)
	for _, name := range []string{pageLogin, pageHome, pageHistory, pageSettings} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// render собирает страницу целиком в буфер, чтобы ошибка шаблона
// не оставила клиенту половину ответа.
func (h *Handler) render(w http.ResponseWriter, status int, page string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.Error("render page", slog.String("page", page), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Debug("write page", slog.String("page", page), slog.String("error", err.Error()))
	}
}
