package earnings

import (
	"time"

	"moyudiary/internal/domain/settings"
)

// WorkingDaysPerMonth - среднее число рабочих дней в месяце.
const WorkingDaysPerMonth = 21.75

// DailyWage возвращает зарплату за полный рабочий день.
func DailyWage(s settings.Settings) float64 {
	return s.Salary / WorkingDaysPerMonth
}

// EarnedSoFar считает, сколько заработано сегодня к моменту now, и идет ли
// сейчас рабочее время. Функция чистая: результат зависит только от аргументов.
func EarnedSoFar(s settings.Settings, now time.Time) (float64, bool) {
	start, end, err := s.WorkWindow(now)
	if err != nil || !end.After(start) {
		return 0, false
	}

	daily := DailyWage(s)
	switch {
	case now.Before(start):
		return 0, false
	case !now.Before(end):
		return daily, false
	}

	perSecond := daily / end.Sub(start).Seconds()
	return now.Sub(start).Seconds() * perSecond, true
}
