package app

import (
	"context"
	"sync/atomic"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/state"
)

// Compile-time interface checks.
var (
	_ domain.Action = (*localAction)(nil)
	_ domain.Action = (*remoteAction)(nil)
)

// localAction applies a store transition through a single dispatch and
// undoes it with another. Once the synchronizer is closed both directions
// become no-ops, which is how late resolutions are dropped.
type localAction struct {
	desc   string
	store  *state.Store
	closed *atomic.Bool
	apply  func(st *state.State)
	undo   func(st *state.State)

	applied bool
}

func (a *localAction) Execute(_ context.Context) error {
	if a.closed.Load() {
		return nil
	}
	a.store.Dispatch(a.apply)
	a.applied = true
	return nil
}

func (a *localAction) Rollback(_ context.Context) error {
	if !a.applied || a.undo == nil || a.closed.Load() {
		return nil
	}
	a.store.Dispatch(a.undo)
	a.applied = false
	return nil
}

func (a *localAction) Description() string { return a.desc }

// remoteAction performs one call against the remote resource. A completed
// remote call cannot be compensated, so Rollback does nothing; it is only
// reached when a later step fails, and local steps never fail.
type remoteAction struct {
	desc string
	call func(ctx context.Context) error
}

func (a *remoteAction) Execute(ctx context.Context) error {
	return a.call(ctx)
}

func (a *remoteAction) Rollback(_ context.Context) error { return nil }

func (a *remoteAction) Description() string { return a.desc }
