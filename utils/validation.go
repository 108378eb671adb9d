// utils/validation.go
package utils

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// NormalizePhone strips spaces, dashes and parentheses.
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}

// IsE164 reports whether phone carries an explicit country code.
func IsE164(phone string) bool {
	cleaned := NormalizePhone(phone)
	return strings.HasPrefix(cleaned, "+") && phoneRegex.MatchString(cleaned)
}

// RegisterValidators adds the "phone" tag to gin's binding validator. Empty
// values pass so the tag can be combined with omitempty or required.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || ValidatePhone(s)
	})
}
