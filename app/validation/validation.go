// Package validation wires go-playground/validator for request structs.
// Business-rule validation (absence guard, existence checks) lives in the
// database layer; this covers shape and range checks only.
package validation

import (
	"github.com/go-playground/validator/v10"

	"hillcrest-academy/app/models"
)

var validate = validator.New()

// Struct validates a request struct, converting the first tag failure into a
// models.ValidationError.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return models.NewValidationError(errs[0].Field(), "failed on "+errs[0].Tag()+" validation")
	}
	return models.NewValidationError("", err.Error())
}
