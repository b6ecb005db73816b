package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"moyudiary/internal/domain/session"
)

// Sessions - источник активной сессии.
type Sessions interface {
	Current() (session.Session, bool)
}

type Auth struct {
	session Sessions
	log     *slog.Logger
}

func New(session Sessions, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const sessionKey contextKey = "session"

// Middleware пропускает запрос к huma-операции только при активной сессии
// и кладет ее в контекст.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		sess, ok := a.session.Current()
		if !ok {
			a.log.Debug("no active session", slog.String("path", ctx.URL().Path))
			ctx.SetStatus(http.StatusUnauthorized)
			ctx.SetHeader("Content-Type", "application/json")

			err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"error": "Unauthorized",
			})
			if err != nil {
				a.log.Error("json encode", slog.String("error", err.Error()))
			}
			return
		}

		next(huma.WithContext(ctx, WithSession(ctx.Context(), sess)))
	}
}

// Proceed - то же для обычных chi-маршрутов: без сессии перенаправляет на loginPath.
func (a *Auth) Proceed(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := a.session.Current()
			if !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func WithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

func GetSession(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(session.Session)
	return sess, ok
}
