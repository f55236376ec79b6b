package ports

import (
	"context"

	"constraintsvc/internal/core/domain/schema"
)

type SchemaRepository interface {
	Save(ctx context.Context, s *schema.Schema) error
	GetByID(ctx context.Context, id string) (*schema.Schema, error)
	List(ctx context.Context) ([]*schema.Schema, error)
	Delete(ctx context.Context, id string) error
}
