package settings

import (
	"fmt"
	"strings"
	"time"
)

const (
	TimeLayout = "15:04"
	DateLayout = "2006-01-02"

	MinPayday = 1
	MaxPayday = 31
)

// Settings - пользовательские настройки. Имена JSON полей совпадают с теми,
// под которыми запись лежит в хранилище.
type Settings struct {
	Salary          float64 `json:"salary" doc:"Месячная зарплата" minimum:"0"`
	Payday          int     `json:"payday" doc:"День выплаты зарплаты" minimum:"1" maximum:"31"`
	WorkStartTime   string  `json:"workStartTime" doc:"Начало рабочего дня, HH:MM" example:"09:00"`
	WorkEndTime     string  `json:"workEndTime" doc:"Конец рабочего дня, HH:MM" example:"18:00"`
	NextHolidayDate string  `json:"nextHolidayDate" doc:"Дата ближайшего праздника, YYYY-MM-DD" example:"2026-12-25"`
	NextHolidayName string  `json:"nextHolidayName" doc:"Название праздника"`
	CurrencySymbol  string  `json:"currencySymbol" doc:"Символ валюты" example:"¥"`
	CustomAPIURL    string  `json:"customApiUrl,omitempty" doc:"Адрес прокси для генерации комментариев" required:"false"`
}

// Default возвращает настройки по умолчанию. Праздник - 25 декабря года now.
func Default(now time.Time) Settings {
	return Settings{
		Salary:          10000,
		Payday:          15,
		WorkStartTime:   "09:00",
		WorkEndTime:     "18:00",
		NextHolidayDate: time.Date(now.Year(), time.December, 25, 0, 0, 0, 0, time.UTC).Format(DateLayout),
		NextHolidayName: "假期",
		CurrencySymbol:  "¥",
		CustomAPIURL:    "",
	}
}

// Normalize приводит числовые поля к допустимым диапазонам.
func (s Settings) Normalize() Settings {
	if s.Salary < 0 {
		s.Salary = 0
	}
	s.Payday = ClampPayday(s.Payday)
	s.CustomAPIURL = strings.TrimSpace(s.CustomAPIURL)
	return s
}

// HasCustomAPI сообщает, задан ли собственный адрес API.
func (s Settings) HasCustomAPI() bool {
	return strings.TrimSpace(s.CustomAPIURL) != ""
}

// WorkWindow возвращает начало и конец рабочего дня в дату и зону now.
func (s Settings) WorkWindow(now time.Time) (time.Time, time.Time, error) {
	start, err := ClockOn(now, s.WorkStartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("work start: %w", err)
	}
	end, err := ClockOn(now, s.WorkEndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("work end: %w", err)
	}
	return start, end, nil
}

// HolidayDate разбирает дату праздника в зоне loc.
func (s Settings) HolidayDate(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s.NextHolidayDate, loc)
}

// ClockOn переносит время HH:MM на календарный день day.
func ClockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func ClampPayday(day int) int {
	if day < MinPayday {
		return MinPayday
	}
	if day > MaxPayday {
		return MaxPayday
	}
	return day
}

func validClock(v string) bool {
	_, err := time.Parse(TimeLayout, strings.TrimSpace(v))
	return err == nil
}

func validDate(v string) bool {
	_, err := time.Parse(DateLayout, v)
	return err == nil
}
