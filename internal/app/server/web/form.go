package web

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"moyudiary/internal/domain/settings"
)

// settingsFromForm накладывает поля формы на current. Отсутствующие поля
// не меняются, нечисловое значение числового поля становится нулем.
func settingsFromForm(form url.Values, current settings.Settings) settings.Settings {
	st := current

	if form.Has("salary") {
		st.Salary = parseNumber(form.Get("salary"))
	}
	if form.Has("payday") {
		p := parseNumber(form.Get("payday"))
		st.Payday = settings.ClampPayday(int(math.Max(0, math.Min(p, settings.MaxPayday+1))))
	}

	text := func(key string, dst *string) {
		if form.Has(key) {
			*dst = strings.TrimSpace(form.Get(key))
		}
	}
	text("workStartTime", &st.WorkStartTime)
	text("workEndTime", &st.WorkEndTime)
	text("nextHolidayDate", &st.NextHolidayDate)
	text("nextHolidayName", &st.NextHolidayName)
	text("currencySymbol", &st.CurrencySymbol)
	text("customApiUrl", &st.CustomAPIURL)

	return st
}

func parseNumber(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
