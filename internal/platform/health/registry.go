// Package health keeps the readiness checks of the configured todo store.
// The readiness endpoint runs every registered check on each probe.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-spa-service/internal/app/fanout"
	"github.com/jsamuelsen11/todo-spa-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when the probe's own context
// has a longer deadline or none.
const DefaultCheckTimeout = 2 * time.Second

// maxParallelChecks caps concurrent checks per probe.
const maxParallelChecks = 8

// Registry is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	checkers     []ports.HealthChecker
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check concurrently and returns the results keyed by
// checker name. When two checkers share a name the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxParallelChecks, checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		ctx, cancel := context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()
		return struct{}{}, c.HealthCheck(ctx)
	})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}
