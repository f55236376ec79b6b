package schema

import (
	"errors"

	"constraintsvc/internal/core/domain/validation"
)

// InlineID names ad-hoc documents sent with a validation request; it cannot
// be used for a stored schema.
const InlineID = "inline"

var (
	ErrReservedID = errors.New("schema ID is reserved")
)

type Service struct {
	registry *validation.Registry
}

func NewService(registry *validation.Registry) *Service {
	return &Service{registry: registry}
}

// CheckSchemaForCreation rejects reserved IDs and documents that reference
// validators the registry does not know.
func (s *Service) CheckSchemaForCreation(schema *Schema) error {
	if schema.ID == InlineID {
		return ErrReservedID
	}
	return s.CheckConstraints(schema.Constraints)
}

// CheckConstraints reports the first unregistered validator referenced by
// constraints.
func (s *Service) CheckConstraints(constraints validation.Constraints) error {
	if missing := s.registry.Missing(constraints.Validators()); len(missing) > 0 {
		return &validation.UnknownValidatorError{Validator: missing[0]}
	}
	return nil
}
