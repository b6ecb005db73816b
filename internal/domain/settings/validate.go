package settings

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid settings")

// Validate проверяет форматы строковых полей. Числовые поля не проверяются:
// их приводит к диапазону Normalize.
func (s Settings) Validate() error {
	var errs []error
	if !validClock(s.WorkStartTime) {
		errs = append(errs, fmt.Errorf("workStartTime %q: want HH:MM", s.WorkStartTime))
	}
	if !validClock(s.WorkEndTime) {
		errs = append(errs, fmt.Errorf("workEndTime %q: want HH:MM", s.WorkEndTime))
	}
	if !validDate(s.NextHolidayDate) {
		errs = append(errs, fmt.Errorf("nextHolidayDate %q: want YYYY-MM-DD", s.NextHolidayDate))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
