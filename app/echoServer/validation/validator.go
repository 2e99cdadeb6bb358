// Package validation adapts go-playground struct-tag validation to echo's
// Validator interface, so controllers can lean on c.Validate for DTOs.
package validation

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

// Validate checks the DTO's validate tags.
func (v *Validator) Validate(i any) error {
	return v.v.Struct(i)
}
