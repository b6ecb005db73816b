package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"moyudiary/internal/domain/session"
)

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Current() (session.Session, bool) {
	args := m.Called()
	return args.Get(0).(session.Session), args.Bool(1)
}

type whoOutput struct {
	Body struct {
		UserID string `json:"userId"`
	}
}

func register(api huma.API, a *Auth) {
	huma.Register(api, huma.Operation{
		OperationID: "who",
		Method:      http.MethodGet,
		Path:        "/who",
		Middlewares: huma.Middlewares{a.Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*whoOutput, error) {
		sess, ok := GetSession(ctx)
		if !ok {
			return nil, huma.Error500InternalServerError("no session in context")
		}
		out := &whoOutput{}
		out.Body.UserID = sess.UserID
		return out, nil
	})
}

func TestAuth_Middleware(t *testing.T) {
	t.Run("active session", func(t *testing.T) {
		sessions := new(MockSessions)
		sessions.On("Current").Return(session.Session{UserID: "alice"}, true)

		_, api := humatest.New(t)
		register(api, New(sessions, slog.Default()))

		resp := api.Get("/who")
		assert.Equal(t, http.StatusOK, resp.Code)
		var body whoOutput
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body.Body))
		assert.Equal(t, "alice", body.Body.UserID)
	})

	t.Run("logged out", func(t *testing.T) {
		sessions := new(MockSessions)
		sessions.On("Current").Return(session.Session{}, false)

		_, api := humatest.New(t)
		register(api, New(sessions, slog.Default()))

		resp := api.Get("/who")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, resp.Body.String())
	})
}

func TestAuth_Proceed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := GetSession(r.Context())
		_, _ = w.Write([]byte(sess.UserID))
	})

	t.Run("active session", func(t *testing.T) {
		sessions := new(MockSessions)
		sessions.On("Current").Return(session.Session{UserID: "bob"}, true)

		rec := httptest.NewRecorder()
		New(sessions, slog.Default()).Proceed("/login")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bob", rec.Body.String())
	})

	t.Run("redirects to login", func(t *testing.T) {
		sessions := new(MockSessions)
		sessions.On("Current").Return(session.Session{}, false)

		rec := httptest.NewRecorder()
		New(sessions, slog.Default()).Proceed("/login")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})
}

func TestGetSession_Empty(t *testing.T) {
	_, ok := GetSession(context.Background())
	assert.False(t, ok)
}
