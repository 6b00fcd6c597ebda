package httputil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("the request body is invalid")

// ValidationErrorToText returns a readable message for a failed binding
// constraint.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("%s is not a valid email address", e.Field())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// validationError joins the messages of all failed constraints.
func validationError(errs validator.ValidationErrors) error {
	texts := make([]string, 0, len(errs))
	for _, e := range errs {
		texts = append(texts, ValidationErrorToText(e))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(texts, ", "))
}
