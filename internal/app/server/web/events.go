package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"

	"moyudiary/internal/app/server/api/http/middleware/auth"
	"moyudiary/internal/domain/earnings"
	"moyudiary/internal/domain/ticker"
)

// earningsEvents держит поток SSE с показателями главного экрана. Тикер
// принадлежит соединению: останавливается при его закрытии и
// перезапускается при каждом сохранении настроек.
func (h *Handler) earningsEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sess, _ := auth.GetSession(r.Context())
	st, err := h.sessions.Settings(sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	updates, unsubscribe := h.sessions.Subscribe()
	defer unsubscribe()

	ctx := r.Context()
	snapshots := make(chan earnings.Snapshot, 1)
	t := ticker.New(h.tick, func(s earnings.Snapshot) {
		select {
		case snapshots <- s:
		default:
		}
	})
	t.Start(ctx, st)
	defer t.Stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.log.Debug("earnings stream opened", slog.String("user", sess.UserID))
	defer h.log.Debug("earnings stream closed", slog.String("user", sess.UserID))

	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			fresh, err := h.sessions.Settings(sess)
			if err != nil {
				_ = writeEvent(w, "logout", "{}")
				flusher.Flush()
				return
			}
			t.Restart(ctx, fresh)
		case snap := <-snapshots:
			data, err := json.Marshal(snap)
			if err != nil {
				h.log.Error("marshal snapshot", slog.String("error", err.Error()))
				return
			}
			if err := writeEvent(w, "earnings", string(data)); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event, data string) error {
	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
