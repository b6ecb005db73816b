package earnings

import (
	"math"
	"time"

	"moyudiary/internal/domain/settings"
)

const day = 24 * time.Hour

// DaysUntilPayday возвращает число дней до ближайшего дня выплаты.
// Если в следующем месяце нет такого числа, дата переносится по правилам
// календаря (31 июня -> 1 июля).
func DaysUntilPayday(payday int, today time.Time) int {
	payday = settings.ClampPayday(payday)
	current := today.Day()

	switch {
	case current == payday:
		return 0
	case current < payday:
		return payday - current
	}

	next := time.Date(today.Year(), today.Month()+1, payday, 0, 0, 0, 0, time.UTC)
	return ceilDays(next.Sub(civilDay(today)))
}

// DaysUntilHoliday возвращает число календарных дней до праздника, 0 если он
// сегодня или уже прошел. Время суток у обеих дат игнорируется.
func DaysUntilHoliday(holiday, today time.Time) int {
	h := civilDay(holiday)
	t := civilDay(today)
	if !h.After(t) {
		return 0
	}
	return ceilDays(h.Sub(t))
}

// civilDay переносит календарную дату в UTC, где в сутках всегда 24 часа.
func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / day.Hours()))
}
