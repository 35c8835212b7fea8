// Package app provides the application services: the synchronizer that keeps
// the local state container consistent with the remote todo resource, the
// view service for filter and pagination intents, and the helpers that run
// them in the background.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	appctx "github.com/jsamuelsen11/todosync/internal/app/context"
	"github.com/jsamuelsen11/todosync/internal/app/fanout"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/platform/telemetry"
	"github.com/jsamuelsen11/todosync/internal/ports"
	"github.com/jsamuelsen11/todosync/internal/state"
)

// Compile-time check that Synchronizer implements ports.SyncService.
var _ ports.SyncService = (*Synchronizer)(nil)

// ErrClosed is returned by operations started after Close.
var ErrClosed = fmt.Errorf("synchronizer: %w", domain.ErrClosed)

const tracerName = "github.com/jsamuelsen11/todosync/internal/app"

// Synchronizer implements ports.SyncService. Each mutation is staged as a
// local action and a remote action on an appctx.Operation, ordered by the
// configured Strategy, and committed with rollback on failure.
//
// Resolutions are applied in the order remote calls complete. Concurrent
// edits to the same todo are not coalesced; the last resolution wins.
// Local steps write absolute values (the same value sent to the server),
// never deltas against whatever the store holds at resolution time.
//
// Rollback restores the values read from the store before the remote call
// was sent. A rollback therefore overwrites any resolution for the same
// field that landed while the call was in flight; it is just another
// resolution, and the last one wins.
type Synchronizer struct {
	todos      ports.TodoClient
	categories ports.CategoryClient
	store      *state.Store
	strategy   Strategy
	metrics    *telemetry.Metrics
	logger     *slog.Logger

	closed atomic.Bool
}

// SynchronizerOption configures a Synchronizer.
type SynchronizerOption func(*Synchronizer)

// WithStrategy selects the mutation strategy. The default is StrategyConfirm.
func WithStrategy(strategy Strategy) SynchronizerOption {
	return func(s *Synchronizer) { s.strategy = strategy }
}

// WithMetrics records operation counts and durations.
func WithMetrics(metrics *telemetry.Metrics) SynchronizerOption {
	return func(s *Synchronizer) { s.metrics = metrics }
}

// NewSynchronizer creates a Synchronizer that resolves into store. A nil
// logger discards output.
func NewSynchronizer(
	todos ports.TodoClient,
	categories ports.CategoryClient,
	store *state.Store,
	logger *slog.Logger,
	opts ...SynchronizerOption,
) *Synchronizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Synchronizer{
		todos:      todos,
		categories: categories,
		store:      store,
		strategy:   StrategyConfirm,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Strategy returns the configured mutation strategy.
func (s *Synchronizer) Strategy() Strategy {
	return s.strategy
}

// Close stops the synchronizer. Operations started afterwards fail with
// ErrClosed, and resolutions of calls still in flight are dropped without
// touching the store.
func (s *Synchronizer) Close() {
	s.closed.Store(true)
}

// FetchTodos replaces the local collection with the remote one. On failure
// the previous collection is kept and the lifecycle records the message.
func (s *Synchronizer) FetchTodos(ctx context.Context) error {
	const name = "FetchTodos"
	if s.closed.Load() {
		return ErrClosed
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "sync."+name)
	defer span.End()
	start := time.Now()

	s.logger.InfoContext(ctx, "fetching todos")
	s.store.Dispatch(func(st *state.State) { st.Todos.BeginLoad() })

	todos, err := s.todos.ListTodos(ctx)
	if s.closed.Load() {
		return err
	}
	if err != nil {
		s.store.Dispatch(func(st *state.State) { st.Todos.FailLoad(err.Error()) })
		s.fail(ctx, span, name, start, err)
		return fmt.Errorf("fetching todos: %w", err)
	}

	s.store.Dispatch(func(st *state.State) { st.Todos.Load(todos) })
	s.record(ctx, name, start, nil)
	return nil
}

// FetchCategories replaces the local categories with the remote ones.
func (s *Synchronizer) FetchCategories(ctx context.Context) error {
	const name = "FetchCategories"
	if s.closed.Load() {
		return ErrClosed
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "sync."+name)
	defer span.End()
	start := time.Now()

	s.logger.InfoContext(ctx, "fetching categories")
	s.store.Dispatch(func(st *state.State) { st.Categories.BeginLoad() })

	categories, err := s.categories.ListCategories(ctx)
	if s.closed.Load() {
		return err
	}
	if err != nil {
		s.store.Dispatch(func(st *state.State) { st.Categories.FailLoad(err.Error()) })
		s.fail(ctx, span, name, start, err)
		return fmt.Errorf("fetching categories: %w", err)
	}

	s.store.Dispatch(func(st *state.State) { st.Categories.Load(categories) })
	s.record(ctx, name, start, nil)
	return nil
}

// Refresh fetches todos and categories concurrently. Both fetches run to
// completion; their errors are joined.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	return fanout.Each(ctx, s.FetchTodos, s.FetchCategories)
}

// CreateTodo validates in and creates it remotely. The todo is sent with a
// client-generated candidate id; the server's id wins.
func (s *Synchronizer) CreateTodo(ctx context.Context, in todo.Input) (*todo.Todo, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	draft := todo.NewDraft(in)
	s.logger.InfoContext(ctx, "creating todo", slog.String("todo_id", draft.ID))

	var created todo.Todo
	remote := &remoteAction{
		desc: "create todo " + draft.ID + " remotely",
		call: func(ctx context.Context) error {
			t, err := s.todos.CreateTodo(ctx, &draft)
			if err != nil {
				return err
			}
			created = *t
			return nil
		},
	}

	var steps []domain.Action
	switch s.strategy {
	case StrategyOptimistic:
		insertDraft := s.local("insert draft "+draft.ID,
			func(st *state.State) { st.Todos.Add(draft) },
			func(st *state.State) { st.Todos.Remove(draft.ID) },
		)
		confirmDraft := s.local("confirm draft "+draft.ID,
			func(st *state.State) {
				// The draft may be gone if a fetch replaced the collection meanwhile.
				if !st.Todos.Replace(draft.ID, created) {
					st.Todos.Add(created)
				}
			}, nil,
		)
		steps = append(s.order(insertDraft, remote), confirmDraft)
	default:
		addCreated := s.local("add created todo",
			func(st *state.State) { st.Todos.Add(created) }, nil,
		)
		steps = s.order(addCreated, remote)
	}

	if err := s.commit(ctx, "CreateTodo", newOperation("create todo", steps...), draft.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

// ToggleTodo sends the negation of the todo's current completion flag and
// applies that same value locally, so a concurrent toggle or fetch never
// flips it back. Toggling an id that is not in the store does nothing and
// sends no request.
func (s *Synchronizer) ToggleTodo(ctx context.Context, id string) error {
	if s.closed.Load() {
		return ErrClosed
	}

	current, _, ok := s.find(id)
	if !ok {
		s.logger.DebugContext(ctx, "toggle ignored, todo not in store", slog.String("todo_id", id))
		return nil
	}
	target := !current.Completed
	s.logger.InfoContext(ctx, "toggling todo",
		slog.String("todo_id", id),
		slog.Bool("completed", target),
	)

	local := s.local("toggle todo "+id+" locally",
		func(st *state.State) { st.Todos.SetCompleted(id, target) },
		func(st *state.State) { st.Todos.SetCompleted(id, current.Completed) },
	)
	remote := &remoteAction{
		desc: "toggle todo " + id + " remotely",
		call: func(ctx context.Context) error {
			_, err := s.todos.SetCompleted(ctx, id, target)
			return err
		},
	}

	return s.commit(ctx, "ToggleTodo", newOperation("toggle todo", s.order(local, remote)...), id)
}

// UpdateDescription replaces the description of a todo. The request is sent
// even when the todo is not in the store; the local change is then a no-op.
func (s *Synchronizer) UpdateDescription(ctx context.Context, id, description string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.logger.InfoContext(ctx, "updating todo description", slog.String("todo_id", id))

	previous, _, found := s.find(id)
	local := s.local("update description of "+id+" locally",
		func(st *state.State) { st.Todos.SetDescription(id, description) },
		func(st *state.State) {
			if found {
				st.Todos.SetDescription(id, previous.Description)
			}
		},
	)
	remote := &remoteAction{
		desc: "update description of " + id + " remotely",
		call: func(ctx context.Context) error {
			_, err := s.todos.SetDescription(ctx, id, description)
			return err
		},
	}

	return s.commit(ctx, "UpdateDescription", newOperation("update todo description", s.order(local, remote)...), id)
}

// DeleteTodo removes a todo. A rolled back removal restores the todo at its
// original position.
func (s *Synchronizer) DeleteTodo(ctx context.Context, id string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.logger.InfoContext(ctx, "deleting todo", slog.String("todo_id", id))

	previous, index, found := s.find(id)
	local := s.local("remove todo "+id+" locally",
		func(st *state.State) { st.Todos.Remove(id) },
		func(st *state.State) {
			if found {
				st.Todos.InsertAt(index, previous)
			}
		},
	)
	remote := &remoteAction{
		desc: "delete todo " + id + " remotely",
		call: func(ctx context.Context) error { return s.todos.DeleteTodo(ctx, id) },
	}

	return s.commit(ctx, "DeleteTodo", newOperation("delete todo", s.order(local, remote)...), id)
}

// order arranges a mutation's steps for the configured strategy.
func (s *Synchronizer) order(local, remote domain.Action) []domain.Action {
	if s.strategy == StrategyOptimistic {
		return []domain.Action{local, remote}
	}
	return []domain.Action{remote, local}
}

func (s *Synchronizer) local(desc string, apply, undo func(st *state.State)) *localAction {
	return &localAction{
		desc:   desc,
		store:  s.store,
		closed: &s.closed,
		apply:  apply,
		undo:   undo,
	}
}

func newOperation(name string, steps ...domain.Action) *appctx.Operation {
	op := appctx.New(name)
	// A fresh operation only rejects nil actions, and steps are never nil.
	_ = op.AddActions(steps...)
	return op
}

// commit runs op and resolves the todo lifecycle: a failure is recorded as
// Failed, a success clears an earlier failure.
func (s *Synchronizer) commit(ctx context.Context, name string, op *appctx.Operation, todoID string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "sync."+name)
	defer span.End()
	span.SetAttributes(
		attribute.String("todo.id", todoID),
		attribute.String("sync.strategy", s.strategy.String()),
	)
	start := time.Now()

	err := op.Commit(ctx)
	if s.closed.Load() {
		return err
	}
	if err != nil {
		s.store.Dispatch(func(st *state.State) { st.Todos.Fail(err.Error()) })
		s.fail(ctx, span, name, start, err, slog.String("todo_id", todoID))
		return err
	}

	s.store.Dispatch(func(st *state.State) { st.Todos.ClearError() })
	s.record(ctx, name, start, nil)
	return nil
}

func (s *Synchronizer) find(id string) (todo.Todo, int, bool) {
	var (
		t     todo.Todo
		index int
		ok    bool
	)
	s.store.Read(func(st *state.State) {
		t, index, ok = st.Todos.Find(id)
	})
	return t, index, ok
}

func (s *Synchronizer) fail(ctx context.Context, span trace.Span, name string, start time.Time, err error, attrs ...slog.Attr) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	args := []any{
		slog.String("operation", name),
		slog.String("strategy", s.strategy.String()),
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Any("error", err))
	s.logger.ErrorContext(ctx, "synchronization failed", args...)

	s.record(ctx, name, start, err)
}

// record is a no-op when metrics are not configured.
func (s *Synchronizer) record(ctx context.Context, name string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "failure"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(name),
		telemetry.AttrResult.String(result),
		telemetry.AttrStrategy.String(s.strategy.String()),
	)
	s.metrics.SyncOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.SyncOperationTotal.Add(ctx, 1, attrs)
}
