package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"constraintsvc/internal/platform/health"
)

type MockManagerInterface struct {
	mock.Mock
}

func NewMockManagerInterface(t mock.TestingT) *MockManagerInterface {
	m := &MockManagerInterface{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockManagerInterface) Register(checker health.Checker) {
	m.Called(checker)
}

func (m *MockManagerInterface) CheckAll(ctx context.Context) map[string]health.CheckResult {
	results, _ := m.Called(ctx).Get(0).(map[string]health.CheckResult)
	return results
}

