package acl

import (
	"context"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It is the service name of the underlying
// [httpclient.Client].
func (c *TodoClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the remote resource's availability from the circuit
// breaker of the underlying client. No network call is made.
//
// This reports downstream status, not process readiness: the view API keeps
// serving the last known state while the remote resource is failing.
func (c *TodoClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
