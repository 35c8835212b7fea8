package domain

import "context"

// Action represents a single executable step of a synchronization with
// rollback capability. A mutation is expressed as a local action (a change
// to the in-memory store) and a remote action (an HTTP call); the order in
// which they are committed decides between confirm-then-apply and
// apply-then-rollback.
//
// Action is defined in the domain layer so that domain packages can reference
// it without depending on the application layer.
type Action interface {
	// Execute performs the action. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "toggle todo 123 locally").
	Description() string
}
