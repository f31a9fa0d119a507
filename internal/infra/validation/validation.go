// Package validation wraps go-playground/validator and maps its failures to field-level domain errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "jobboard/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// New returns a validator that reports fields by their json names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
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

	return v
}

// Struct validates s and returns a *domainerrors.ValidationError on failure.
func Struct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return ToDomain(err)
	}

	return nil
}

// ToDomain converts validator failures to a ValidationError. Other errors are wrapped unchanged.
func ToDomain(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validation failed")
	}

	verr := domainerrors.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), message(fe))
	}

	return verr
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "url":
		return "Enter a valid URL."
	case "eqfield":
		return "Passwords don't match."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("Must be at least %s.", fe.Param())
	default:
		return "Invalid value."
	}
}
