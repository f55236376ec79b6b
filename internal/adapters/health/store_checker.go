package health

import (
	"context"
	"fmt"

	"constraintsvc/internal/core/ports"
	"constraintsvc/internal/platform/health"
)

// StoreChecker reports whether the schema store answers a listing.
type StoreChecker struct {
	repo ports.SchemaRepository
	name string
}

func NewStoreChecker(repo ports.SchemaRepository, name string) *StoreChecker {
	return &StoreChecker{
		repo: repo,
		name: name,
	}
}

func (c *StoreChecker) Name() string {
	return c.name
}

func (c *StoreChecker) Check(ctx context.Context) health.CheckResult {
	if err := ctx.Err(); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "schema store check cancelled",
			Error:   err.Error(),
		}
	}

	schemas, err := c.repo.List(ctx)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "schema store unavailable",
			Error:   err.Error(),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d schemas stored", len(schemas)),
	}
}
