package dashboard

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard",
		Summary:     "Данные главного экрана",
		Description: "Заработок на сейчас, отсчеты до зарплаты и праздника, последняя запись.",
		Tags:        []string{"dashboard"},
		Middlewares: h.middleware,
	}
}
