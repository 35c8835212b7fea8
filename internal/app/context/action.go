package appctx

import (
	"context"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

// actionItem is the internal interface for executable items in the queue.
type actionItem interface {
	execute(ctx context.Context) error
	rollback(ctx context.Context) error
	description() string
}

// singleAction wraps a domain.Action to satisfy the actionItem interface.
type singleAction struct {
	action domain.Action
}

func (s *singleAction) execute(ctx context.Context) error  { return s.action.Execute(ctx) }
func (s *singleAction) rollback(ctx context.Context) error { return s.action.Rollback(ctx) }
func (s *singleAction) description() string                { return s.action.Description() }

// AddAction stages an action for execution by Commit.
// Returns ErrNilAction if action is nil, or ErrAlreadyCommitted if the
// Operation has already been committed.
func (op *Operation) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	op.queueMu.Lock()
	defer op.queueMu.Unlock()

	if op.committed {
		return ErrAlreadyCommitted
	}
	op.items = append(op.items, &singleAction{action: action})
	return nil
}

// AddActions stages several actions in order, stopping at the first error.
func (op *Operation) AddActions(actions ...domain.Action) error {
	for _, a := range actions {
		if err := op.AddAction(a); err != nil {
			return err
		}
	}
	return nil
}
