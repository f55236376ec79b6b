package validation

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownValidator = errors.New("unknown validator")
	ErrDeferredResult   = errors.New("validator returned a deferred result")
	ErrInvalidValidator = errors.New("invalid validator registration")
)

// UnknownValidatorError is returned when a constraint names a validator that
// is not registered.
type UnknownValidatorError struct {
	Validator string
	Attribute string
}

func (e *UnknownValidatorError) Error() string {
	return fmt.Sprintf("unknown validator %s", e.Validator)
}

func (e *UnknownValidatorError) Unwrap() error {
	return ErrUnknownValidator
}

// DeferredResultError is returned when a validator breaks the synchronous
// contract by returning a Deferred value.
type DeferredResultError struct {
	Validator string
	Attribute string
}

func (e *DeferredResultError) Error() string {
	return fmt.Sprintf("validator %s returned a deferred result for %s; asynchronous validation is not supported", e.Validator, e.Attribute)
}

func (e *DeferredResultError) Unwrap() error {
	return ErrDeferredResult
}
