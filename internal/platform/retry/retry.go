// Package retry runs an operation with exponential backoff.
package retry

import (
	"context"
	"time"

	retrygo "github.com/avast/retry-go/v4"
)

type Retry interface {
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
	onRetry  func(attempt uint, err error)
}

type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New defaults to three attempts starting at one second, capped at five.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// retry-go treats zero attempts as unlimited
	if cfg.attempts == 0 {
		cfg.attempts = 1
	}
	return &retrier{cfg: cfg}
}

// Execute returns the last error once attempts are exhausted, or the context
// error when ctx ends first.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	opts := []retrygo.Option{
		retrygo.Attempts(r.cfg.attempts),
		retrygo.Delay(r.cfg.delay),
		retrygo.MaxDelay(r.cfg.maxDelay),
		retrygo.DelayType(retrygo.BackOffDelay),
		retrygo.LastErrorOnly(true),
		retrygo.Context(ctx),
	}
	if r.cfg.onRetry != nil {
		opts = append(opts, retrygo.OnRetry(r.cfg.onRetry))
	}
	return retrygo.Do(operation, opts...)
}

func WithAttempts(n uint) Option {
	return func(c *config) { c.attempts = n }
}

func WithDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

func WithMaxDelay(d time.Duration) Option {
	return func(c *config) { c.maxDelay = d }
}

// OnRetry is called after each failed attempt, with a zero-based index.
func OnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) { c.onRetry = fn }
}
