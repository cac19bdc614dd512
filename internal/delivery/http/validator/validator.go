// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can rely on struct tags for request binding checks.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator wraps a single validator instance shared by all handlers.
type Validator struct {
	validate *validator.Validate
}

// New builds the echo validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
