package http

import (
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorsOnce sync.Once

// registerValidators añade reglas personalizadas al binding de Gin. Las
// reglas por endpoint viven como tags en los structs de request.
func registerValidators() {
	validatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("strongpw", func(fl validator.FieldLevel) bool {
				return isStrongPassword(fl.Field().String())
			})
		}
	})
}

// isStrongPassword exige mínimo 8 caracteres con minúscula, mayúscula,
// dígito y símbolo.
func isStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
