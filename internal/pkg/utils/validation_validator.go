package utils

import (
	"strings"

	"smartrx-client/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("http_method", validateHTTPMethod)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateHTTPMethod(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "", constvars.MethodGet, constvars.MethodHead, constvars.MethodPost,
		constvars.MethodPut, constvars.MethodPatch, constvars.MethodDelete, constvars.MethodOptions:
		return true
	}
	return false
}
