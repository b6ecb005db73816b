package web

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"moyudiary/internal/domain/settings"
)

func TestSettingsFromForm(t *testing.T) {
	current := settings.Default(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name  string
		form  url.Values
		check func(t *testing.T, st settings.Settings)
	}{
		{
			name: "all fields",
			form: url.Values{
				"salary":          {"15000.5"},
				"payday":          {"10"},
				"workStartTime":   {"08:30"},
				"workEndTime":     {" 17:30 "},
				"nextHolidayDate": {"2024-10-01"},
				"nextHolidayName": {"国庆节"},
				"currencySymbol":  {"$"},
				"customApiUrl":    {"https://proxy.example.com"},
			},
			check: func(t *testing.T, st settings.Settings) {
				assert.Equal(t, 15000.5, st.Salary)
				assert.Equal(t, 10, st.Payday)
				assert.Equal(t, "08:30", st.WorkStartTime)
				assert.Equal(t, "17:30", st.WorkEndTime)
				assert.Equal(t, "2024-10-01", st.NextHolidayDate)
				assert.Equal(t, "国庆节", st.NextHolidayName)
				assert.Equal(t, "$", st.CurrencySymbol)
				assert.Equal(t, "https://proxy.example.com", st.CustomAPIURL)
			},
		},
		{
			name: "missing fields keep current",
			form: url.Values{"salary": {"20000"}},
			check: func(t *testing.T, st settings.Settings) {
				want := current
				want.Salary = 20000
				assert.Equal(t, want, st)
			},
		},
		{
			name: "non numeric becomes zero",
			form: url.Values{"salary": {"lots"}, "payday": {""}},
			check: func(t *testing.T, st settings.Settings) {
				assert.Equal(t, 0.0, st.Salary)
				assert.Equal(t, settings.MinPayday, st.Payday)
			},
		},
		{
			name: "payday clamped",
			form: url.Values{"payday": {"1e30"}},
			check: func(t *testing.T, st settings.Settings) {
				assert.Equal(t, settings.MaxPayday, st.Payday)
			},
		},
		{
			name: "custom url cleared",
			form: url.Values{"customApiUrl": {"  "}},
			check: func(t *testing.T, st settings.Settings) {
				assert.Empty(t, st.CustomAPIURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, settingsFromForm(tt.form, current))
		})
	}
}
