package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"moyudiary/internal/domain/comment"
	"moyudiary/internal/domain/session"
	"moyudiary/internal/domain/settings"
	"moyudiary/internal/domain/store"
	"moyudiary/internal/infrastructure/storage/memory"
)

type cannedGenerator struct{}

func (cannedGenerator) Generate(_ context.Context, action string, _ settings.Settings) comment.Result {
	return comment.Result{Text: action + "?好主意", Outcome: comment.OutcomeGenerated}
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	now := func() time.Time { return time.Date(2024, time.June, 10, 13, 30, 0, 0, time.UTC) }

	kv := memory.New()
	st := store.New(kv, slog.Default(), store.WithClock(now))
	sessions := session.NewService(st, cannedGenerator{}, slog.Default(), session.WithClock(now))

	srv := httptest.NewServer(New(sessions, kv, slog.Default()))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp, out
}

func TestAPI_Flow(t *testing.T) {
	srv := newServer(t)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "logged_out", body["session"])

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = do(t, srv, http.MethodPost, "/api/v1/session", `{"username":"alice"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body["userId"])

	resp, body = do(t, srv, http.MethodPut, "/api/v1/settings", `{
		"salary": 21750, "payday": 15, "workStartTime": "09:00", "workEndTime": "18:00",
		"nextHolidayDate": "2024-10-01", "nextHolidayName": "国庆", "currencySymbol": "¥"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 21750.0, body["salary"])

	resp, body = do(t, srv, http.MethodPost, "/api/v1/logs", `{"type":"water"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "generated", body["outcome"])
	entry := body["log"].(map[string]any)
	assert.Equal(t, "喝水?好主意", entry["aiComment"])
	assert.InDelta(t, 500.0, entry["moneyEarnedAtTime"], 1e-9)

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/logs", `{"type":"nap"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap := body["snapshot"].(map[string]any)
	assert.Equal(t, 5.0, snap["daysUntilPayday"])
	assert.Equal(t, "国庆", snap["holidayName"])
	assert.NotNil(t, body["latest"])

	resp, _ = do(t, srv, http.MethodDelete, "/api/v1/session", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/logs", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// повторный вход возвращает прежние данные
	resp, _ = do(t, srv, http.MethodPost, "/api/v1/session", `{"username":"alice"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/logs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["logs"], 1)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "国庆", body["nextHolidayName"])

	resp, _ = do(t, srv, http.MethodDelete, "/api/v1/logs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/logs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["logs"])
}
