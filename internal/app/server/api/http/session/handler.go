package session

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"moyudiary/internal/app/server/api/http/apierr"
	"moyudiary/internal/app/server/api/http/middleware/auth"
	"moyudiary/internal/domain/session"
)

type Service interface {
	Status() session.Status
	Login(ctx context.Context, username string) (session.Session, error)
	Logout(ctx context.Context, sess session.Session) error
}

type Handler struct {
	service   Service
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

// NewHandler: public - цепочка для чтения состояния и входа,
// protected - для выхода (требует активную сессию).
func NewHandler(service Service, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statusOp(), h.status)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) status(_ context.Context, _ *struct{}) (*statusOutput, error) {
	return h.output(), nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*statusOutput, error) {
	if _, err := h.service.Login(ctx, input.Body.Username); err != nil {
		return nil, apierr.From(err)
	}
	return h.output(), nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*statusOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Logout(ctx, sess); err != nil {
		return nil, apierr.From(err)
	}
	return h.output(), nil
}

func (h *Handler) output() *statusOutput {
	st := h.service.Status()
	return &statusOutput{
		Body: statusResponse{
			State:  st.State.String(),
			Phase:  st.Phase.String(),
			UserID: st.UserID,
		},
	}
}
