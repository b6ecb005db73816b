package logs

import "moyudiary/internal/domain/moyulog"

type listInput struct {
	Limit int `query:"limit" minimum:"0" doc:"Сколько последних записей вернуть, 0 - все"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Logs []moyulog.Log `json:"logs"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Type moyulog.Type `json:"type" enum:"water,toilet,walk,chat,other" doc:"Вид перерыва"`
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	Log     moyulog.Log `json:"log"`
	Outcome string      `json:"outcome" enum:"generated,fallback,missing_config" doc:"Откуда взят комментарий"`
}

type clearOutput struct {
	Body clearResponse
}

type clearResponse struct {
	Status string `json:"status" example:"Ok"`
}
