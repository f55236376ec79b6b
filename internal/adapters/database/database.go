// Package database owns the PostgreSQL connection used by the schema store.
package database

import (
	"context"
	"errors"
	"sync"

	"constraintsvc/internal/config"
	"constraintsvc/internal/platform/database/postgres"
	"constraintsvc/internal/platform/logger"
	"constraintsvc/internal/platform/retry"
)

var ErrNotConnected = errors.New("database is not connected")

type Lifecycle struct {
	cfg    *config.DatabaseConfig
	logger logger.Logger
	retry  retry.Retry

	mu sync.Mutex
	db *postgres.DB
}

func NewDatabaseLifecycle(cfg *config.DatabaseConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:    cfg,
		logger: log,
		retry: retry.New(
			retry.WithAttempts(cfg.Postgres.ConnectAttempts),
			retry.WithDelay(cfg.Postgres.ConnectDelay),
			retry.OnRetry(func(attempt uint, err error) {
				log.Warn("PostgreSQL not reachable", logger.Int("attempt", int(attempt)+1), logger.Error(err))
			}),
		),
	}
}

// NewConnectedLifecycle wraps an open connection; Start is not needed.
func NewConnectedLifecycle(db *postgres.DB, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		logger: log,
		db:     db,
	}
}

// Start opens and pings a new connection, replacing any existing one. The
// ping is retried with backoff up to the configured attempts.
func (d *Lifecycle) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		d.logger.Warn("Replacing open database connection")
		d.closeLocked()
	}

	pg := &d.cfg.Postgres
	d.logger.Info("Connecting to PostgreSQL",
		logger.String("host", pg.Host),
		logger.Int("port", pg.Port),
		logger.String("database", pg.Database),
	)

	db, err := postgres.New(pg)
	if err != nil {
		d.logger.Error("Failed to open PostgreSQL connection", logger.Error(err))
		return err
	}

	if err := d.retry.Execute(ctx, func() error { return db.Ping(ctx) }); err != nil {
		d.logger.Error("Failed to ping PostgreSQL", logger.Error(err))
		_ = db.Close()
		return err
	}

	d.db = db
	d.logger.Info("Connected to PostgreSQL")
	return nil
}

// Stop closes the connection. The handle is released even when ctx expires
// before Close returns.
func (d *Lifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	db := d.db
	d.db = nil
	d.logger.Info("Closing database connection")

	done := make(chan error, 1)
	go func() { done <- db.Close() }()

	select {
	case err := <-done:
		if err != nil {
			d.logger.Error("Error closing database connection", logger.Error(err))
		}
		return err
	case <-ctx.Done():
		d.logger.Warn("Database close timed out")
		return ctx.Err()
	}
}

func (d *Lifecycle) closeLocked() {
	if err := d.db.Close(); err != nil {
		d.logger.Error("Failed to close database connection", logger.Error(err))
	}
	d.db = nil
}

// Connection returns the open handle or nil before Start.
func (d *Lifecycle) Connection() *postgres.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db
}

// DB is Connection with ErrNotConnected in place of a nil handle.
func (d *Lifecycle) DB() (*postgres.DB, error) {
	if db := d.Connection(); db != nil {
		return db, nil
	}
	return nil, ErrNotConnected
}
