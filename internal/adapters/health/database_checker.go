package health

import (
	"context"
	"fmt"

	"constraintsvc/internal/adapters/database"
	"constraintsvc/internal/platform/health"
)

// DatabaseChecker pings the schema database and reports pool usage.
type DatabaseChecker struct {
	db   *database.Lifecycle
	name string
}

func NewDatabaseChecker(db *database.Lifecycle, name string) *DatabaseChecker {
	return &DatabaseChecker{
		db:   db,
		name: name,
	}
}

func (c *DatabaseChecker) Name() string {
	return c.name
}

func (c *DatabaseChecker) Check(ctx context.Context) health.CheckResult {
	db, err := c.db.DB()
	if err != nil {
		return health.CheckResult{Status: health.StatusUnhealthy, Message: err.Error()}
	}

	if err := db.Ping(ctx); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "ping failed",
			Error:   err.Error(),
		}
	}

	stats := db.Stats()
	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d open, %d in use", stats.OpenConnections, stats.InUse),
	}
}
