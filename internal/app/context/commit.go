package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todosync/internal/platform/logging"
)

// Commit executes all staged actions in insertion order. If one fails, the
// actions that completed before it are rolled back in reverse order.
// Rollback errors are logged and do not change the returned error, which
// wraps the failing action's error.
//
// Whatever the outcome, the Operation is marked committed afterwards.
// Returns ErrAlreadyCommitted if called more than once.
func (op *Operation) Commit(ctx context.Context) error {
	op.queueMu.Lock()
	if op.committed {
		op.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	op.committed = true
	// Nothing can be appended once committed is set.
	items := op.items
	op.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, item := range items {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", op.name),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.description()),
		)

		if err := item.execute(ctx); err != nil {
			logger.WarnContext(ctx, "action failed, initiating rollback",
				slog.String("operation", op.name),
				slog.Int("failed_step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
			rollbackItems(ctx, op.name, items, i-1, logger)
			return fmt.Errorf("%s: %w", op.name, err)
		}
	}

	return nil
}

// rollbackItems rolls back items 0..upTo (inclusive) in reverse order.
func rollbackItems(ctx context.Context, name string, items []actionItem, upTo int, logger *slog.Logger) {
	for i := upTo; i >= 0; i-- {
		item := items[i]
		logger.InfoContext(ctx, "rolling back action",
			slog.String("operation", name),
			slog.Int("step", i+1),
			slog.String("action", item.description()),
		)
		if err := item.rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", name),
				slog.Int("step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
		}
	}
}
