// Package fanout runs work concurrently with a bound on the number of
// goroutines doing it at once. The synchronizer uses it to fetch the todo and
// category collections side by side.
package fanout

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item with at most maxWorkers calls in flight and
// returns the results in input order.
//
// An item still waiting for a slot when ctx ends records ctx.Err() and fn is
// not called for it. Calls already running finish; fn is responsible for
// honoring ctx itself. maxWorkers below 1 is treated as 1, and an empty items
// slice yields an empty non-nil result.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	sem := semaphore.NewWeighted(int64(max(1, maxWorkers)))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Err = err
				return
			}
			defer sem.Release(1)

			results[i].Value, results[i].Err = fn(ctx, item)
		})
	}
	wg.Wait()
	return results
}

// Each runs every task concurrently and returns the non-nil errors joined in
// task order, or nil when all tasks succeeded.
func Each(ctx context.Context, tasks ...func(context.Context) error) error {
	results := Run(ctx, len(tasks), tasks, func(ctx context.Context, task func(context.Context) error) (struct{}, error) {
		return struct{}{}, task(ctx)
	})
	return Errors(results)
}

// Errors joins the errors of results in order.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
