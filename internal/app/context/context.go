// Package appctx provides the staged action queue used by the synchronizer.
//
// An Operation collects the steps of one synchronization (a local store
// mutation and a remote call) and commits them in insertion order. When a
// step fails, the steps that already ran are rolled back in reverse order:
//
//	op := appctx.New("toggle todo")
//	_ = op.AddAction(remote) // confirm-then-apply
//	_ = op.AddAction(local)
//	err := op.Commit(ctx)
//
// Staging the local action first gives apply-then-rollback instead.
package appctx

import (
	"errors"
	"sync"
)

// ErrAlreadyCommitted is returned when AddAction or Commit is called on an
// Operation that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: operation already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction.
var ErrNilAction = errors.New("appctx: nil action")

// Operation is a single-use queue of staged actions. Create one per
// synchronizer call; it is safe for concurrent staging but commits once.
type Operation struct {
	name string

	queueMu   sync.Mutex
	items     []actionItem
	committed bool
}

// New creates an empty Operation. The name appears in logs and in the error
// returned by Commit.
func New(name string) *Operation {
	return &Operation{name: name}
}

// Name returns the operation name.
func (op *Operation) Name() string {
	return op.name
}

// Len returns the number of staged actions.
func (op *Operation) Len() int {
	op.queueMu.Lock()
	defer op.queueMu.Unlock()
	return len(op.items)
}
