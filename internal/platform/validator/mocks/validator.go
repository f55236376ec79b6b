package mocks

import "github.com/stretchr/testify/mock"

type MockValidator struct {
	mock.Mock
}

func NewMockValidator(t mock.TestingT) *MockValidator {
	m := &MockValidator{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockValidator) Validate(s interface{}) error {
	return m.Called(s).Error(0)
}
