package logs

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"moyudiary/internal/app/server/api/http/middleware/auth"
	"moyudiary/internal/domain/comment"
	"moyudiary/internal/domain/moyulog"
	"moyudiary/internal/domain/session"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Logs(sess session.Session) ([]moyulog.Log, error) {
	args := m.Called(sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]moyulog.Log), args.Error(1)
}

func (m *MockService) LogAction(ctx context.Context, sess session.Session, typ moyulog.Type) (session.ActionResult, error) {
	args := m.Called(ctx, sess, typ)
	return args.Get(0).(session.ActionResult), args.Error(1)
}

func (m *MockService) ClearLogs(ctx context.Context, sess session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

var (
	alice   = session.Session{UserID: "alice"}
	authCtx = auth.WithSession(context.Background(), alice)
	at      = time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC)
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_List(t *testing.T) {
	logs := []moyulog.Log{
		moyulog.New(moyulog.TypeChat, at.Add(time.Minute), "", 0),
		moyulog.New(moyulog.TypeWater, at, "", 0),
	}

	t.Run("All", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Logs", alice).Return(logs, nil)

		out, err := NewHandler(svc, slog.Default(), nil).list(authCtx, &listInput{})
		require.NoError(t, err)
		assert.Equal(t, logs, out.Body.Logs)
	})

	t.Run("Limit", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Logs", alice).Return(logs, nil)

		out, err := NewHandler(svc, slog.Default(), nil).list(authCtx, &listInput{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, logs[:1], out.Body.Logs)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		svc := new(MockService)

		_, err := NewHandler(svc, slog.Default(), nil).list(context.Background(), &listInput{})
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}

func TestHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		entry := moyulog.New(moyulog.TypeWater, at, comment.Fallbacks[1], 12.5)
		svc.On("LogAction", mock.Anything, alice, moyulog.TypeWater).
			Return(session.ActionResult{Log: entry, Outcome: comment.OutcomeFallback}, nil)

		input := &createInput{}
		input.Body.Type = moyulog.TypeWater

		out, err := NewHandler(svc, slog.Default(), nil).create(authCtx, input)
		require.NoError(t, err)
		assert.Equal(t, entry, out.Body.Log)
		assert.Equal(t, "fallback", out.Body.Outcome)
	})

	t.Run("Busy", func(t *testing.T) {
		svc := new(MockService)
		svc.On("LogAction", mock.Anything, alice, moyulog.TypeToilet).
			Return(session.ActionResult{}, session.ErrBusy)

		input := &createInput{}
		input.Body.Type = moyulog.TypeToilet

		_, err := NewHandler(svc, slog.Default(), nil).create(authCtx, input)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("UnknownType", func(t *testing.T) {
		svc := new(MockService)
		svc.On("LogAction", mock.Anything, alice, moyulog.Type("nap")).
			Return(session.ActionResult{}, session.ErrUnknownType)

		input := &createInput{}
		input.Body.Type = "nap"

		_, err := NewHandler(svc, slog.Default(), nil).create(authCtx, input)
		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
	})
}

func TestHandler_Clear(t *testing.T) {
	svc := new(MockService)
	svc.On("ClearLogs", mock.Anything, alice).Return(nil).Once()
	svc.On("ClearLogs", mock.Anything, alice).Return(errors.New("locked")).Once()

	h := NewHandler(svc, slog.Default(), nil)

	out, err := h.clear(authCtx, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)

	_, err = h.clear(authCtx, nil)
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}
