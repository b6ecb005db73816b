package logs

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "logs-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/logs",
		Summary:     "Записи активного пользователя, новые первыми",
		Tags:        []string{"logs"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "logs-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/logs",
		Summary:       "Отметить перерыв",
		Description:   "Фиксирует заработок на момент действия и получает комментарий. Пока предыдущий комментарий не получен, возвращает 409.",
		Tags:          []string{"logs"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) clearOp() huma.Operation {
	return huma.Operation{
		OperationID: "logs-clear",
		Method:      http.MethodDelete,
		Path:        "/api/v1/logs",
		Summary:     "Удалить все записи",
		Tags:        []string{"logs"},
		Middlewares: h.middleware,
	}
}
