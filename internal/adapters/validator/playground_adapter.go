package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	validatorPlatform "constraintsvc/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundAdapter() validatorPlatform.Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so clients see what they sent.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	return &playgroundValidator{validate: validate}
}

func (v *playgroundValidator) Validate(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
	for i, fe := range validationErrors {
		outErrors[i] = validatorPlatform.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		}
	}
	return validatorPlatform.ValidationError{Errors: outErrors}
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "max":
		return fmt.Sprintf("This field must be at most %s characters long", e.Param())
	case "min":
		return fmt.Sprintf("This field must be at least %s characters long", e.Param())
	case "oneof":
		return fmt.Sprintf("This field must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
