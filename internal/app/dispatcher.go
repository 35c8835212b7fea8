package app

import (
	"context"
	"sync"
)

// Result is the outcome of an operation run by a Dispatcher.
type Result[T any] struct {
	Value T
	Err   error
}

// Dispatcher runs operations on their own goroutines so callers never block
// on the network. Each call returns a channel that receives exactly one
// Result and is then closed, unless the dispatcher was closed first, in
// which case the channel is closed without a value.
type Dispatcher struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewDispatcher creates a Dispatcher. Operations receive a context derived
// from parent; it is canceled by Close.
func NewDispatcher(parent context.Context) *Dispatcher {
	ctx, cancel := context.WithCancel(parent)
	return &Dispatcher{ctx: ctx, cancel: cancel}
}

// Go runs fn in the background.
func Go[T any](d *Dispatcher, fn func(ctx context.Context) (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		close(out)
		return out
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer close(out)

		v, err := fn(d.ctx)

		d.mu.Lock()
		closed := d.closed
		d.mu.Unlock()
		if closed {
			return
		}
		out <- Result[T]{Value: v, Err: err}
	}()
	return out
}

// GoErr runs an operation that only returns an error.
func GoErr(d *Dispatcher, fn func(ctx context.Context) error) <-chan Result[struct{}] {
	return Go(d, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}

// Close refuses new operations, cancels running ones and discards their
// results. It waits for running operations to return.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
}
