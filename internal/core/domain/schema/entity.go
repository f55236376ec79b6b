package schema

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"constraintsvc/internal/core/domain/validation"
)

var (
	ErrInvalidSchemaID = errors.New("schema ID must start with a lowercase letter or digit and contain only lowercase letters, digits, '-' or '_' (max 64)")
	ErrEmptySchemaID   = errors.New("schema ID cannot be empty")
	ErrEmptyDocument   = errors.New("schema document cannot be empty")
	ErrSchemaNotFound  = errors.New("schema not found")
	idRegex            = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
)

type AlreadyExistsError struct {
	ID string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("schema with id '%s' already exists", e.ID)
}

// Schema is a named, stored constraint document.
type Schema struct {
	ID          string                 `json:"id"`
	Description string                 `json:"description,omitempty"`
	Document    string                 `json:"document"`
	Constraints validation.Constraints `json:"-"`
	CreatedAt   time.Time              `json:"created_at"`
}

func (s *Schema) GetID() string {
	return s.ID
}

func NewSchema(id, description, document string, constraints validation.Constraints, createdAt time.Time) (*Schema, error) {
	if id == "" {
		return nil, ErrEmptySchemaID
	}
	if !idRegex.MatchString(id) {
		return nil, ErrInvalidSchemaID
	}
	if document == "" {
		return nil, ErrEmptyDocument
	}
	return &Schema{
		ID:          id,
		Description: description,
		Document:    document,
		Constraints: constraints,
		CreatedAt:   createdAt.UTC(),
	}, nil
}
