package memory

import (
	"context"
	"errors"

	"constraintsvc/internal/core/domain/schema"
	memoryPlatform "constraintsvc/internal/platform/repository/memory"
)

type Repository struct {
	*memoryPlatform.Repository[*schema.Schema]
}

func NewRepository() *Repository {
	return &Repository{
		Repository: memoryPlatform.New[*schema.Schema](),
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*schema.Schema, error) {
	s, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrNotFound) {
			return nil, schema.ErrSchemaNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *Repository) Save(ctx context.Context, s *schema.Schema) error {
	err := r.Repository.Save(ctx, s)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrAlreadyExists) {
			return &schema.AlreadyExistsError{ID: s.ID}
		}
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.Repository.Delete(ctx, id); err != nil {
		if errors.Is(err, memoryPlatform.ErrNotFound) {
			return schema.ErrSchemaNotFound
		}
		return err
	}
	return nil
}
