package schema

import "constraintsvc/internal/core/domain/validation"

// Outcome is the answer to a validation request. Errors is nil when the
// attributes are valid.
type Outcome struct {
	SchemaID string            `json:"schema_id"`
	Valid    bool              `json:"valid"`
	Errors   validation.Result `json:"errors,omitempty"`
}
