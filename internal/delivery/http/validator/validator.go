// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound inputs.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
