package api

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"farmerassist.app/internal/core/translation"
	errorspkg "farmerassist.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules on gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errorspkg.NewConfigurationError("unexpected binding validator engine", nil)
	}
	if err := v.RegisterValidation("langcode", validateLanguageCode); err != nil {
		return errorspkg.NewConfigurationError("register langcode validator", err)
	}
	return nil
}

func validateLanguageCode(fl validator.FieldLevel) bool {
	return translation.IsLanguageCode(strings.ToLower(strings.TrimSpace(fl.Field().String())))
}

// bindJSON binds an optional JSON body; an empty body leaves out untouched
func bindJSON(c *gin.Context, out interface{}) error {
	err := c.ShouldBindJSON(out)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errorspkg.NewValidationError(fmt.Sprintf("%s is invalid", jsonName(fieldErrs[0].Field())))
	}
	return errorspkg.NewValidationError("Invalid request format")
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
