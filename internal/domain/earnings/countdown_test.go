package earnings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"moyudiary/internal/domain/settings"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntilPayday(t *testing.T) {
	tests := []struct {
		name   string
		payday int
		today  time.Time
		want   int
	}{
		{name: "payday today", payday: 15, today: date(2024, time.June, 15), want: 0},
		{name: "later this month", payday: 15, today: date(2024, time.June, 10), want: 5},
		{name: "next month", payday: 5, today: date(2024, time.June, 10), want: 25},
		{name: "year rollover", payday: 10, today: date(2024, time.December, 20), want: 21},
		{name: "time of day ignored", payday: 5, today: time.Date(2024, time.June, 10, 23, 30, 0, 0, time.UTC), want: 25},
		{name: "31st in a long month", payday: 31, today: time.Date(2024, time.May, 31, 12, 0, 0, 0, time.UTC), want: 0},
		{name: "31st in a 30 day month", payday: 31, today: date(2024, time.June, 30), want: 1},
		{name: "rolls past short february", payday: 30, today: date(2024, time.January, 31), want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilPayday(tt.payday, tt.today))
		})
	}
}

func TestDaysUntilPayday_NeverNegative(t *testing.T) {
	for d := 1; d <= 31; d++ {
		for day := date(2024, time.January, 1); day.Year() == 2024; day = day.AddDate(0, 0, 1) {
			assert.GreaterOrEqual(t, DaysUntilPayday(d, day), 0)
		}
	}
}

func TestDaysUntilPayday_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}

	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{name: "autumn 25 hour day", today: time.Date(2024, time.October, 20, 12, 0, 0, 0, loc), want: 16},
		{name: "spring 23 hour day", today: time.Date(2024, time.March, 20, 12, 0, 0, 0, loc), want: 16},
		{name: "just before midnight", today: time.Date(2024, time.October, 20, 23, 59, 0, 0, loc), want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilPayday(5, tt.today))
		})
	}
}

func TestDaysUntilHoliday(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)

	tests := []struct {
		name    string
		holiday time.Time
		today   time.Time
		want    int
	}{
		{name: "today", holiday: date(2024, time.October, 1), today: date(2024, time.October, 1), want: 0},
		{name: "past", holiday: date(2024, time.May, 1), today: date(2024, time.October, 1), want: 0},
		{name: "same day late evening", holiday: date(2024, time.October, 1), today: time.Date(2024, time.October, 1, 23, 59, 0, 0, time.UTC), want: 0},
		{name: "tomorrow", holiday: date(2024, time.October, 2), today: time.Date(2024, time.October, 1, 23, 59, 0, 0, time.UTC), want: 1},
		{name: "holiday with time", holiday: time.Date(2024, time.October, 1, 18, 0, 0, 0, time.UTC), today: date(2024, time.September, 30), want: 1},
		{name: "months ahead", holiday: date(2024, time.December, 25), today: date(2024, time.June, 10), want: 198},
		{name: "other zone", holiday: time.Date(2024, time.October, 3, 0, 0, 0, 0, loc), today: time.Date(2024, time.October, 1, 1, 0, 0, 0, loc), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilHoliday(tt.holiday, tt.today))
		})
	}
}

func TestDaysUntilHoliday_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	today := time.Date(2024, time.March, 30, 12, 0, 0, 0, loc)
	holiday := time.Date(2024, time.April, 1, 0, 0, 0, 0, loc)

	assert.Equal(t, 2, DaysUntilHoliday(holiday, today))
}

func TestTake(t *testing.T) {
	s := settings.Default(date(2024, time.June, 10))
	s.Salary = 21750
	s.Payday = 15
	s.NextHolidayDate = "2024-06-20"
	s.NextHolidayName = "端午"

	snap := Take(s, time.Date(2024, time.June, 10, 13, 30, 0, 0, time.UTC))

	assert.InDelta(t, 500, snap.Earned, 1e-9)
	assert.True(t, snap.Working)
	assert.Equal(t, 5, snap.DaysUntilPayday)
	assert.Equal(t, 10, snap.DaysUntilHoliday)
	assert.Equal(t, "端午", snap.HolidayName)
	assert.Equal(t, "¥", snap.CurrencySymbol)
}

func TestTake_BadHolidayDate(t *testing.T) {
	s := settings.Default(date(2024, time.June, 10))
	s.NextHolidayDate = "soon"

	assert.Equal(t, 0, Take(s, date(2024, time.June, 10)).DaysUntilHoliday)
}
