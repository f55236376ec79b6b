package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"constraintsvc/internal/core/domain/validation"
)

type MockDocumentDecoder struct {
	mock.Mock
}

func NewMockDocumentDecoder(t mock.TestingT) *MockDocumentDecoder {
	m := &MockDocumentDecoder{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockDocumentDecoder) Decode(doc []byte) (validation.Constraints, error) {
	args := m.Called(doc)
	constraints, _ := args.Get(0).(validation.Constraints)
	return constraints, args.Error(1)
}

type MockValidationRecorder struct {
	mock.Mock
}

func NewMockValidationRecorder(t mock.TestingT) *MockValidationRecorder {
	m := &MockValidationRecorder{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockValidationRecorder) RecordValidation(ctx context.Context, schemaID string, valid bool, messages int) {
	m.Called(ctx, schemaID, valid, messages)
}
