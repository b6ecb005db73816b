package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"moyudiary/internal/domain/session"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusReporter interface {
	Status() session.Status
}

type Handler struct {
	storage    Pinger
	sessions   StatusReporter
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(storage Pinger, sessions StatusReporter, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		sessions:   sessions,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.storage.Ping(pingCtx); err != nil {
		h.log.Error("storage ping failed", slog.String("error", err.Error()))
		return nil, huma.Error503ServiceUnavailable("storage unavailable", err)
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: "OK",
			Session: h.sessions.Status().State.String(),
		},
	}, nil
}
