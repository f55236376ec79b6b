package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound      = errors.New("no entry with this id")
	ErrAlreadyExists = errors.New("an entry with this id exists")
)

type Entity interface {
	GetID() string
}

// Repository is a concurrency-safe map of entities keyed by ID.
type Repository[T Entity] struct {
	data map[string]T
	mu   sync.RWMutex
}

func New[T Entity]() *Repository[T] {
	return &Repository[T]{
		data: make(map[string]T),
	}
}

func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; exists {
		return ErrAlreadyExists
	}

	r.data[id] = entity
	return nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.data[id]
	if !exists {
		return zero, ErrNotFound
	}
	return entity, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// List returns every entity ordered by ID.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	entities := make([]T, 0, len(r.data))
	for _, entity := range r.data {
		entities = append(entities, entity)
	}
	r.mu.RUnlock()

	sort.Slice(entities, func(i, j int) bool { return entities[i].GetID() < entities[j].GetID() })
	return entities, nil
}

