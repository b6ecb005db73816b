package earnings

import (
	"time"

	"moyudiary/internal/domain/settings"
)

// Snapshot - все показатели главного экрана на момент At.
type Snapshot struct {
	At               time.Time `json:"at"`
	Earned           float64   `json:"earned"`
	Working          bool      `json:"working"`
	CurrencySymbol   string    `json:"currencySymbol"`
	DaysUntilPayday  int       `json:"daysUntilPayday"`
	DaysUntilHoliday int       `json:"daysUntilHoliday"`
	HolidayName      string    `json:"holidayName"`
}

// Take собирает Snapshot для настроек s на момент now.
func Take(s settings.Settings, now time.Time) Snapshot {
	earned, working := EarnedSoFar(s, now)

	holidayDays := 0
	if holiday, err := s.HolidayDate(now.Location()); err == nil {
		holidayDays = DaysUntilHoliday(holiday, now)
	}

	return Snapshot{
		At:               now,
		Earned:           earned,
		Working:          working,
		CurrencySymbol:   s.CurrencySymbol,
		DaysUntilPayday:  DaysUntilPayday(s.Payday, now),
		DaysUntilHoliday: holidayDays,
		HolidayName:      s.NextHolidayName,
	}
}
