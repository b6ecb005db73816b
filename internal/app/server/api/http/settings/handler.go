package settings

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"moyudiary/internal/app/server/api/http/apierr"
	"moyudiary/internal/app/server/api/http/middleware/auth"
	"moyudiary/internal/domain/session"
	"moyudiary/internal/domain/settings"
)

type Service interface {
	Settings(sess session.Session) (settings.Settings, error)
	SaveSettings(ctx context.Context, sess session.Session, st settings.Settings) (settings.Settings, error)
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
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*output, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	st, err := h.service.Settings(sess)
	if err != nil {
		return nil, apierr.From(err)
	}
	return &output{Body: st}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := input.Body.Validate(); err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	saved, err := h.service.SaveSettings(ctx, sess, input.Body)
	if err != nil {
		h.log.Error("save settings", slog.String("user", sess.UserID), slog.String("error", err.Error()))
		return nil, apierr.From(err)
	}
	return &output{Body: saved}, nil
}
