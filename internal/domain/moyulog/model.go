package moyulog

import (
	"time"

	"github.com/google/uuid"
)

// Log - запись о перерыве. После создания не изменяется.
type Log struct {
	ID                string  `json:"id"`
	Type              Type    `json:"type" enum:"water,toilet,walk,chat,other"`
	Timestamp         int64   `json:"timestamp" doc:"Момент создания, мс с начала эпохи"`
	Note              string  `json:"note,omitempty"`
	AIComment         string  `json:"aiComment,omitempty"`
	MoneyEarnedAtTime float64 `json:"moneyEarnedAtTime,omitempty"`
}

// New создает запись. Идентификатор - UUIDv7, он упорядочен по времени создания.
func New(typ Type, at time.Time, comment string, earned float64) Log {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	if earned < 0 {
		earned = 0
	}
	return Log{
		ID:                id.String(),
		Type:              typ,
		Timestamp:         at.UnixMilli(),
		Note:              typ.Label(),
		AIComment:         comment,
		MoneyEarnedAtTime: earned,
	}
}

// Time возвращает момент создания записи в зоне loc.
func (l Log) Time(loc *time.Location) time.Time {
	return time.UnixMilli(l.Timestamp).In(loc)
}

// DayGroup - записи одного календарного дня.
type DayGroup struct {
	Day  time.Time
	Logs []Log
}

// GroupByDay группирует записи по дням, сохраняя исходный порядок (новые сверху).
func GroupByDay(logs []Log, loc *time.Location) []DayGroup {
	var groups []DayGroup
	for _, l := range logs {
		t := l.Time(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		if n := len(groups); n > 0 && groups[n-1].Day.Equal(day) {
			groups[n-1].Logs = append(groups[n-1].Logs, l)
			continue
		}
		groups = append(groups, DayGroup{Day: day, Logs: []Log{l}})
	}
	return groups
}
