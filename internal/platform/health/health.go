package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

type CheckResult struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) map[string]CheckResult
}

// Manager runs registered checkers concurrently, at most limit at a time.
type Manager struct {
	checkers []Checker
	limit    int
	mu       sync.RWMutex
}

var _ ManagerInterface = (*Manager)(nil)

const defaultConcurrency = 4

func NewManager() *Manager {
	return &Manager{
		checkers: make([]Checker, 0),
		limit:    defaultConcurrency,
	}
}

func (m *Manager) Register(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

func (m *Manager) CheckAll(ctx context.Context) map[string]CheckResult {
	m.mu.RLock()
	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	m.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	var resultsMu sync.Mutex

	// Checkers report failures in their result, so the group never cancels.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.limit)
	for _, checker := range checkers {
		checker := checker
		g.Go(func() error {
			start := time.Now()
			result := checker.Check(gctx)
			result.Latency = time.Since(start)

			resultsMu.Lock()
			results[checker.Name()] = result
			resultsMu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

