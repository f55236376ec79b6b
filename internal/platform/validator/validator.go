package validator

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected request field, named as on the wire.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", fe.Field, fe.Message)
}

type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (ve ValidationError) Error() string {
	errs := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		errs = append(errs, fe.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(errs, ", "))
}

// Validator checks request structs against their `validate` tags.
type Validator interface {
	Validate(s any) error
}
