package validators

import (
	"github.com/go-playground/validator/v10"
	"reflect"
	"unicode"
)

// OnlyDigits accepts empty strings, pair it with `required` when needed.
func OnlyDigits(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	for _, ch := range field.String() {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}

func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("onlydigits", OnlyDigits)
}
