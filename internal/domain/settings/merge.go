package settings

import (
	"encoding/json"
	"math"
	"time"
)

// Merge накладывает сохраненную (возможно частичную или битую) запись на
// значения по умолчанию. Каждое поле берется из raw только если оно есть и
// корректно по типу и формату, иначе остается значение по умолчанию.
// Неизвестные поля игнорируются.
func Merge(raw []byte, now time.Time) Settings {
	s := Default(now)
	if len(raw) == 0 {
		return s
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return s
	}

	if v, ok := number(fields["salary"]); ok && v >= 0 {
		s.Salary = v
	}
	if v, ok := number(fields["payday"]); ok {
		s.Payday = ClampPayday(int(math.Round(v)))
	}
	if v, ok := text(fields["workStartTime"]); ok && validClock(v) {
		s.WorkStartTime = v
	}
	if v, ok := text(fields["workEndTime"]); ok && validClock(v) {
		s.WorkEndTime = v
	}
	if v, ok := text(fields["nextHolidayDate"]); ok && validDate(v) {
		s.NextHolidayDate = v
	}
	if v, ok := text(fields["nextHolidayName"]); ok {
		s.NextHolidayName = v
	}
	if v, ok := text(fields["currencySymbol"]); ok {
		s.CurrencySymbol = v
	}
	if v, ok := text(fields["customApiUrl"]); ok {
		s.CustomAPIURL = v
	}

	return s
}

func number(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func text(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}
