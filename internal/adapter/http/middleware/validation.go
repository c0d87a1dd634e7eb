package middleware

import (
	"reflect"
	"strings"

	"assistencia_os/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures the gin validator with json field names and the
// custom "phone" rule.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	_ = v.RegisterValidation("phone", validatePhone)
}

// validatePhone accepts Brazilian numbers with area code, with or without the
// country prefix, in any punctuation.
func validatePhone(fl validator.FieldLevel) bool {
	digits := entities.DigitsOnly(fl.Field().String())
	return len(digits) >= 10 && len(digits) <= 13
}
