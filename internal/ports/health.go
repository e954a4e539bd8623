package ports

import "context"

// HealthChecker reports whether a backing store is reachable. The SQL
// repositories and the remote todo API client implement it.
type HealthChecker interface {
	// Name identifies the checker in readiness output ("sqlite", "todo-api").
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must give up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns the outcome per name; a nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
