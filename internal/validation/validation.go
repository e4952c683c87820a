package validation

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func MustRegisterGin(tag string, fn validator.Func) {
	if err := RegisterGin(tag, fn); err != nil {
		panic(err)
	}
}

func RegisterGin(tag string, fn validator.Func) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation(tag, fn)
	}
	return errors.New("validator engine is not of type *validator.Validate")
}

// FormatValidationError flattens validator errors into a JSON-friendly shape.
func FormatValidationError(err error) []Error {
	var out []Error
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			out = append(out, Error{
				Field:   e.Field(),
				Message: e.Error(),
			})
		}
	}
	return out
}

type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
