// internal/validator/validator.go
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var nonSpace = regexp.MustCompile(`\S`)

func init() {
	Validate = validator.New()

	// строка не пустая и не только пробелы
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonSpace.MatchString(fl.Field().String())
	})
}
