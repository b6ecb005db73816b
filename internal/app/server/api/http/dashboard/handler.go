package dashboard

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"moyudiary/internal/app/server/api/http/apierr"
	"moyudiary/internal/app/server/api/http/middleware/auth"
	"moyudiary/internal/domain/earnings"
	"moyudiary/internal/domain/moyulog"
	"moyudiary/internal/domain/session"
)

type Service interface {
	Snapshot(sess session.Session) (earnings.Snapshot, error)
	Logs(sess session.Session) ([]moyulog.Log, error)
	Status() session.Status
}

type Handler struct {
	service    Service
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Service, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*output, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	snap, err := h.service.Snapshot(sess)
	if err != nil {
		return nil, apierr.From(err)
	}
	logs, err := h.service.Logs(sess)
	if err != nil {
		return nil, apierr.From(err)
	}

	resp := response{
		Snapshot: snap,
		Actions:  make([]action, 0, len(moyulog.Kinds)),
		Busy:     h.service.Status().Phase == session.PhaseAwaitingComment,
	}
	if len(logs) > 0 {
		resp.Latest = &logs[0]
	}
	for _, k := range moyulog.Kinds {
		resp.Actions = append(resp.Actions, action{Type: k.Type, Label: k.Label, Icon: k.Icon})
	}

	return &output{Body: resp}, nil
}
