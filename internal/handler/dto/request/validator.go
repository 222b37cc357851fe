package request

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Evidence photos and profile pictures arrive as data URIs.
func dataImageRule(fl validator.FieldLevel) bool {
	return strings.HasPrefix(fl.Field().String(), "data:image/")
}

// RegisterCustomValidations wires custom binding rules into gin's
// validator engine. Call once at startup.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dataimage", dataImageRule)
}
