package settings

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings",
		Summary:     "Настройки активного пользователя",
		Tags:        []string{"settings"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings",
		Summary:     "Сохранить настройки",
		Description: "Полностью заменяет настройки. Тикер главного экрана перезапускается с новыми значениями.",
		Tags:        []string{"settings"},
		Middlewares: h.middleware,
	}
}
