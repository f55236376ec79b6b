// Package redis opens go-redis clients from connection URLs.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"constraintsvc/internal/platform/retry"
)

var (
	ErrInvalidURL = errors.New("invalid redis connection url")
	ErrNotReady   = errors.New("redis is not ready")
)

type Client struct {
	goredis.UniversalClient
}

// New parses redis://[user:password@]host:port/db. No connection is made
// until the first command.
func New(rawURL string) (*Client, error) {
	opts, err := goredis.ParseURL(rawURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	return Wrap(goredis.NewClient(opts)), nil
}

func Wrap(c goredis.UniversalClient) *Client {
	return &Client{UniversalClient: c}
}

// Ping gives up after timeout when it is positive.
func (c *Client) Ping(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return c.UniversalClient.Ping(ctx).Err()
}

// Connect pings until the server answers or r gives up.
func (c *Client) Connect(ctx context.Context, r retry.Retry, timeout time.Duration) error {
	if err := r.Execute(ctx, func() error { return c.Ping(ctx, timeout) }); err != nil {
		return errors.Join(ErrNotReady, err)
	}
	return nil
}
