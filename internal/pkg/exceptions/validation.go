package exceptions

import (
	"doctorsportal-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		switch firstErr.Tag() {
		case "required":
			return fieldName + " is required"
		case "email":
			return fieldName + " must be a valid email address"
		case "gt":
			return fieldName + " must be greater than " + firstErr.Param()
		case "min":
			return fieldName + " must have at least " + firstErr.Param() + " items"
		case "datetime":
			return fieldName + " must be a date in the form YYYY-MM-DD"
		default:
			return fieldName + " is invalid"
		}
	}
	return constvars.ErrClientCannotProcessRequest
}
