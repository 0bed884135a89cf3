package validator

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CustomValidator wraps validator/v10. Entity validate tags mirror the
// schema's check constraints as a pre-flight courtesy; the database remains
// the authority and rejects anything that slips past.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("timegtfield", validateTimeOfDayAfterField)
	v.RegisterValidation("dgte", validateDecimalGTE)
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validateTimeOfDayAfterField reports whether the field, a time-of-day
// string, is strictly after the sibling field named in the parameter.
// Comparing by value, not length: the builtin gtfield compares string
// lengths, which breaks "09:00" < "12:00".
func validateTimeOfDayAfterField(fl validator.FieldLevel) bool {
	end, ok := parseTimeOfDay(fl.Field().String())
	if !ok {
		return false
	}

	sibling := reflect.Indirect(fl.Parent()).FieldByName(fl.Param())
	if !sibling.IsValid() || sibling.Kind() != reflect.String {
		return false
	}
	start, ok := parseTimeOfDay(sibling.String())
	if !ok {
		return false
	}

	return end.After(start)
}

func parseTimeOfDay(s string) (time.Time, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// validateDecimalGTE mirrors numeric check constraints for decimal.Decimal
// fields, which the builtin gte cannot compare.
func validateDecimalGTE(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	floor, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(floor)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "len":
				errors[field] = field + " must be exactly " + e.Param() + " characters"
			case "gte", "dgte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "gtfield", "timegtfield":
				errors[field] = field + " must be later than " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
