// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"habitrack/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request structs by their `validate` tags.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator with the project's custom tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// hhmm accepts a 24-hour "HH:MM" string.
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseTimeOfDay(fl.Field().String())

		return err == nil
	})

	// isodate accepts a "YYYY-MM-DD" string.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseDate(fl.Field().String())

		return err == nil
	})

	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
