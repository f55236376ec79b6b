package schema

import (
	"context"

	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/domain/validation"
)

type Manager interface {
	CreateSchema(ctx context.Context, id, description, document string) (*schema.Schema, error)
	GetSchema(ctx context.Context, id string) (*schema.Schema, error)
	ListSchemas(ctx context.Context) ([]*schema.Schema, error)
	DeleteSchema(ctx context.Context, id string) error
	ValidateAgainst(ctx context.Context, id string, attrs validation.Attributes, opts ...validation.Option) (*schema.Outcome, error)
	ValidateInline(ctx context.Context, document string, attrs validation.Attributes, opts ...validation.Option) (*schema.Outcome, error)
}
