package dashboard

import (
	"moyudiary/internal/domain/earnings"
	"moyudiary/internal/domain/moyulog"
)

type output struct {
	Body response
}

type response struct {
	Snapshot earnings.Snapshot `json:"snapshot"`
	Latest   *moyulog.Log      `json:"latest,omitempty" doc:"Последняя запись, если есть"`
	Actions  []action          `json:"actions" doc:"Доступные действия в порядке кнопок"`
	Busy     bool              `json:"busy" doc:"Ожидается комментарий к предыдущему действию"`
}

type action struct {
	Type  moyulog.Type `json:"type"`
	Label string       `json:"label"`
	Icon  string       `json:"icon"`
}
