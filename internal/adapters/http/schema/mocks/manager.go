package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/domain/validation"
)

type MockManager struct {
	mock.Mock
}

func NewMockManager(t mock.TestingT) *MockManager {
	m := &MockManager{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockManager) CreateSchema(ctx context.Context, id, description, document string) (*schema.Schema, error) {
	args := m.Called(ctx, id, description, document)
	s, _ := args.Get(0).(*schema.Schema)
	return s, args.Error(1)
}

func (m *MockManager) GetSchema(ctx context.Context, id string) (*schema.Schema, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*schema.Schema)
	return s, args.Error(1)
}

func (m *MockManager) ListSchemas(ctx context.Context) ([]*schema.Schema, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*schema.Schema)
	return list, args.Error(1)
}

func (m *MockManager) DeleteSchema(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ValidateAgainst records the resolved options rather than the option funcs.
func (m *MockManager) ValidateAgainst(ctx context.Context, id string, attrs validation.Attributes, opts ...validation.Option) (*schema.Outcome, error) {
	args := m.Called(ctx, id, attrs, validation.NewOptions(opts...))
	o, _ := args.Get(0).(*schema.Outcome)
	return o, args.Error(1)
}

func (m *MockManager) ValidateInline(ctx context.Context, document string, attrs validation.Attributes, opts ...validation.Option) (*schema.Outcome, error) {
	args := m.Called(ctx, document, attrs, validation.NewOptions(opts...))
	o, _ := args.Get(0).(*schema.Outcome)
	return o, args.Error(1)
}
