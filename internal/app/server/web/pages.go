package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"moyudiary/internal/app/server/api/http/middleware/auth"
	"moyudiary/internal/domain/moyulog"
	"moyudiary/internal/domain/session"
)

const (
	msgEmptyUsername = "请给自己起个代号"
	msgBusy          = "AI 还在想上一条评论，请稍等"
	msgUnknownType   = "没有这种摸鱼方式"
	msgSaved         = "保存成功!"
	msgInternal      = "出了点问题，请稍后再试"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, pageLogin, pageData{Title: "登录"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")

	_, err := h.sessions.Login(r.Context(), username)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, session.ErrEmptyUsername):
		h.render(w, http.StatusBadRequest, pageLogin, pageData{Title: "登录", Error: msgEmptyUsername, Username: username})
	default:
		h.log.Error("login", slog.String("error", err.Error()))
		h.render(w, http.StatusInternalServerError, pageLogin, pageData{Title: "登录", Error: msgInternal, Username: username})
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.GetSession(r.Context())
	if err := h.sessions.Logout(r.Context(), sess); err != nil && !errors.Is(err, session.ErrNotLoggedIn) {
		h.log.Error("logout", slog.String("user", sess.UserID), slog.String("error", err.Error()))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.GetSession(r.Context())
	h.renderHome(w, r, sess, http.StatusOK, "")
}

func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, sess session.Session, status int, errMsg string) {
	snap, err := h.sessions.Snapshot(sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	logs, err := h.sessions.Logs(sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := pageData{
		Title:    "首页",
		Nav:      "home",
		UserID:   sess.UserID,
		Error:    errMsg,
		Snapshot: snap,
		Kinds:    moyulog.Kinds,
		Busy:     h.sessions.Status().Phase == session.PhaseAwaitingComment,
	}
	if len(logs) > 0 {
		data.Latest = &logs[0]
	}
	h.render(w, status, pageHome, data)
}

func (h *Handler) logAction(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.GetSession(r.Context())
	typ := moyulog.Type(chi.URLParam(r, "type"))

	_, err := h.sessions.LogAction(r.Context(), sess, typ)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, session.ErrBusy):
		h.renderHome(w, r, sess, http.StatusConflict, msgBusy)
	case errors.Is(err, session.ErrUnknownType):
		h.renderHome(w, r, sess, http.StatusBadRequest, msgUnknownType)
	default:
		h.fail(w, r, err)
	}
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.GetSession(r.Context())

	logs, err := h.sessions.Logs(sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	st, err := h.sessions.Settings(sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, http.StatusOK, pageHistory, pageData{
		Title:    "记录",
		Nav:      "history",
		UserID:   sess.UserID,
		Groups:   moyulog.GroupByDay(logs, h.loc),
		Settings: st,
	})
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.GetSession(r.Context())

	if err := h.sessions.ClearLogs(r.Context(), sess); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

func (h *Handler) settingsPage(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.GetSession(r.Context())

	st, err := h.sessions.Settings(sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := pageData{Title: "设置", Nav: "settings", UserID: sess.UserID, Settings: st}
	if r.URL.Query().Get("saved") == "1" {
		data.Notice = msgSaved
	}
	h.render(w, http.StatusOK, pageSettings, data)
}

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.GetSession(r.Context())

	current, err := h.sessions.Settings(sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, pageSettings, pageData{
			Title: "设置", Nav: "settings", UserID: sess.UserID, Settings: current, Error: err.Error(),
		})
		return
	}

	st := settingsFromForm(r.PostForm, current)
	if err := st.Validate(); err != nil {
		h.render(w, http.StatusBadRequest, pageSettings, pageData{
			Title: "设置", Nav: "settings", UserID: sess.UserID, Settings: st, Error: err.Error(),
		})
		return
	}

	if _, err := h.sessions.SaveSettings(r.Context(), sess, st); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
}

// fail: устаревшая сессия ведет на вход, остальное - 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, session.ErrNotLoggedIn) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	h.log.Error("request failed", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	http.Error(w, msgInternal, http.StatusInternalServerError)
}
