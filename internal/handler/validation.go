package handler

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/promenade-app/service-route/internal/domain/route"
)

// RegisterValidators installs custom binding validators on gin's validator
// engine. Must be called once before the router handles requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("walkcategory", func(fl validator.FieldLevel) bool {
		return route.Category(fl.Field().String()).IsValid()
	})
}
