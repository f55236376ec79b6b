package mocks

import (
	"github.com/stretchr/testify/mock"

	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/domain/validation"
)

type MockSchemaChecker struct {
	mock.Mock
}

func NewMockSchemaChecker(t mock.TestingT) *MockSchemaChecker {
	m := &MockSchemaChecker{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockSchemaChecker) CheckSchemaForCreation(s *schema.Schema) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSchemaChecker) CheckConstraints(constraints validation.Constraints) error {
	args := m.Called(constraints)
	return args.Error(0)
}
