package web

import (
	"fmt"
	"html/template"
	"time"

	"moyudiary/internal/domain/earnings"
	"moyudiary/internal/domain/moyulog"
	"moyudiary/internal/domain/settings"
)

type pageData struct {
	Title  string
	Nav    string
	UserID string
	Error  string
	Notice string

	Username string

	Snapshot earnings.Snapshot
	Kinds    []moyulog.Kind
	Latest   *moyulog.Log
	Busy     bool

	Groups []moyulog.DayGroup

	Settings settings.Settings
}

var weekdays = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

func templateFuncs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.4f", v)
		},
		"clock": func(ms int64) string {
			return time.UnixMilli(ms).In(loc).Format("15:04")
		},
		"day": func(t time.Time) string {
			return fmt.Sprintf("%d月%d日 %s", t.Month(), t.Day(), weekdays[t.Weekday()])
		},
	}
}
