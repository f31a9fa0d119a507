// Package validator adapts go-playground/validator to echo.
package validator

import (
	"jobboard/internal/infra/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator whose failures are *domainerrors.ValidationError.
func New(validate *validator.Validate) echo.Validator {
	return &echoValidator{validate: validate}
}

func (v *echoValidator) Validate(i any) error {
	return validation.Struct(v.validate, i)
}
