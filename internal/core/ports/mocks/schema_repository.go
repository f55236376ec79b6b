package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"constraintsvc/internal/core/domain/schema"
)

type MockSchemaRepository struct {
	mock.Mock
}

func NewMockSchemaRepository(t mock.TestingT) *MockSchemaRepository {
	m := &MockSchemaRepository{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockSchemaRepository) Save(ctx context.Context, s *schema.Schema) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSchemaRepository) GetByID(ctx context.Context, id string) (*schema.Schema, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*schema.Schema)
	return s, args.Error(1)
}

func (m *MockSchemaRepository) List(ctx context.Context) ([]*schema.Schema, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*schema.Schema)
	return list, args.Error(1)
}

func (m *MockSchemaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
