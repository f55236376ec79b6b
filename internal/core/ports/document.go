package ports

import (
	"context"

	"constraintsvc/internal/core/domain/validation"
)

// DocumentDecoder turns a stored or submitted constraint document into
// constraints.
type DocumentDecoder interface {
	Decode(doc []byte) (validation.Constraints, error)
}

type ValidationRecorder interface {
	RecordValidation(ctx context.Context, schemaID string, valid bool, messages int)
}
