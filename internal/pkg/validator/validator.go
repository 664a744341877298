package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate runs struct tag validation
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator exposes the shared validator for custom configuration
func GetValidator() *validator.Validate {
	return validate
}
