package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/letsmeet/backend/internal/domain"
)

// RegisterValidations registers custom binding validations on gin's
// validator engine.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("swipeaction", func(fl validator.FieldLevel) bool {
			return domain.SwipeAction(fl.Field().String()).Valid()
		})
	}
}
