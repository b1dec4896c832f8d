// Package health provides the readiness registry. The task-list store and
// its guard register here at startup; the readiness endpoint checks them on
// every probe.
package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/usertask-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Checkers are keyed by name; registering a second checker under an existing
// name replaces the first.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	probes   singleflight.Group
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for i, c := range r.checkers {
		if c.Name() == name {
			r.checkers[i] = checker
			return
		}
	}
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns results
// keyed by checker name. Nil values indicate healthy components.
//
// Overlapping probes share one round of checks, so a burst of readiness
// requests pings the database once.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	v, _, _ := r.probes.Do("all", func() (any, error) {
		return r.checkAll(ctx), nil
	})

	shared, _ := v.(map[string]error)
	results := make(map[string]error, len(shared))
	for name, err := range shared {
		results[name] = err
	}
	return results
}

func (r *Registry) checkAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
		g       errgroup.Group
	)
	for _, c := range checkers {
		g.Go(func() error {
			err := c.HealthCheck(ctx)
			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}
