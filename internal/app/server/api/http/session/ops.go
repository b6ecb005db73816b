package session

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/session",
		Summary:     "Текущее состояние сессии",
		Tags:        []string{"session"},
		Middlewares: h.public,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-login",
		Method:      http.MethodPost,
		Path:        "/api/v1/session",
		Summary:     "Вход под именем пользователя",
		Description: "Делает пользователя активным и загружает его настройки и записи.",
		Tags:        []string{"session"},
		Middlewares: h.public,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-logout",
		Method:      http.MethodDelete,
		Path:        "/api/v1/session",
		Summary:     "Выход",
		Description: "Сбрасывает активную сессию. Данные пользователя сохраняются.",
		Tags:        []string{"session"},
		Middlewares: h.protected,
	}
}
