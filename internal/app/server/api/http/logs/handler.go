package logs

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"moyudiary/internal/app/server/api/http/apierr"
	"moyudiary/internal/app/server/api/http/middleware/auth"
	"moyudiary/internal/domain/moyulog"
	"moyudiary/internal/domain/session"
)

type Service interface {
	Logs(sess session.Session) ([]moyulog.Log, error)
	LogAction(ctx context.Context, sess session.Session, typ moyulog.Type) (session.ActionResult, error)
	ClearLogs(ctx context.Context, sess session.Session) error
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
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.clearOp(), h.clear)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	logs, err := h.service.Logs(sess)
	if err != nil {
		return nil, apierr.From(err)
	}
	if input.Limit > 0 && len(logs) > input.Limit {
		logs = logs[:input.Limit]
	}

	return &listOutput{
		Body: listResponse{Logs: logs},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	res, err := h.service.LogAction(ctx, sess, input.Body.Type)
	if err != nil {
		return nil, apierr.From(err)
	}

	h.log.Debug("log created",
		slog.String("user", sess.UserID),
		slog.String("type", string(res.Log.Type)),
		slog.String("outcome", string(res.Outcome)),
	)

	return &createOutput{
		Body: createResponse{
			Log:     res.Log,
			Outcome: string(res.Outcome),
		},
	}, nil
}

func (h *Handler) clear(ctx context.Context, _ *struct{}) (*clearOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.ClearLogs(ctx, sess); err != nil {
		return nil, apierr.From(err)
	}
	return &clearOutput{
		Body: clearResponse{Status: "Ok"},
	}, nil
}
