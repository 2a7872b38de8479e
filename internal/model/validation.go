package model

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)

// RegisterValidations installs custom binding rules on gin's validator.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("phone", validPhone)
}

// validPhone accepts an empty value; the field is optional on booking
// payloads and only checked for shape when the client supplies it.
func validPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phonePattern.MatchString(value)
}
