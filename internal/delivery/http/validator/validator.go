// Package validator wires go-playground/validator into echo so request
// DTOs can carry `validate` tags.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// echoValidator adapts validator.Validate to echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New is the constructor for the echo request validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}
