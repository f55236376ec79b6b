package schema

import (
	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/domain/validation"
)

type SchemaChecker interface {
	CheckSchemaForCreation(s *schema.Schema) error
	CheckConstraints(constraints validation.Constraints) error
}
