package binder

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// publishedYearValidator ensures the value is a plausible publication year:
// no earlier than 1900 and no later than the current year. Zero is allowed so
// the validator composes with omitempty on optional fields.
func publishedYearValidator(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	if year == 0 {
		return true
	}
	return year >= 1900 && int(year) <= time.Now().Year()
}
