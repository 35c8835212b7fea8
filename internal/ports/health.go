package ports

import "context"

// HealthChecker is implemented by any component that can report its health,
// such as the remote todo resource client.
type HealthChecker interface {
	// Name identifies the component in readiness output (e.g. "todo-resource").
	Name() string

	// HealthCheck returns nil if healthy, or an error describing the failure.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects health checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check. Nil values mean healthy.
	CheckAll(ctx context.Context) map[string]error
}
