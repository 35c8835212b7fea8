package ports

import (
	"context"

	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/state"
)

// SyncService defines the service port for remote-backed operations.
// Implemented by the application layer; called by inbound adapters.
//
// Each method resolves into the state container before returning. Failures
// are recorded in the todo lifecycle and also returned.
type SyncService interface {
	// FetchTodos replaces the local collection with the remote one.
	FetchTodos(ctx context.Context) error

	// FetchCategories replaces the local categories with the remote ones.
	FetchCategories(ctx context.Context) error

	// Refresh fetches todos and categories concurrently.
	Refresh(ctx context.Context) error

	// CreateTodo validates in, creates it remotely and returns the stored
	// record. Returns domain.ErrValidation for blank text.
	CreateTodo(ctx context.Context, in todo.Input) (*todo.Todo, error)

	// ToggleTodo flips the completion flag of a known todo. Unknown ids are
	// a silent no-op and issue no request.
	ToggleTodo(ctx context.Context, id string) error

	// UpdateDescription replaces the description of a todo.
	UpdateDescription(ctx context.Context, id, description string) error

	// DeleteTodo removes a todo.
	DeleteTodo(ctx context.Context, id string) error
}

// PageNav names a pager movement.
type PageNav string

// Pager movements.
const (
	PageFirst PageNav = "first"
	PagePrev  PageNav = "prev"
	PageNext  PageNav = "next"
	PageLast  PageNav = "last"
)

// ViewService defines the service port for local view intents: filters,
// pagination and reads of the resolved state. Nothing here talks to the
// remote resource.
type ViewService interface {
	// Snapshot returns a copy of the current state.
	Snapshot(ctx context.Context) state.Snapshot

	// SetStatusFilter changes the status filter.
	// Returns domain.ErrValidation for values outside the enumeration.
	SetStatusFilter(ctx context.Context, status todo.StatusFilter) error

	// SetCategoryFilter changes the category filter; empty clears it.
	SetCategoryFilter(ctx context.Context, category string)

	// SetPage moves to page n, clamped to the valid range.
	SetPage(ctx context.Context, n int)

	// SetItemsPerPage changes the page size and returns to page 1.
	// Returns domain.ErrValidation when n is not positive.
	SetItemsPerPage(ctx context.Context, n int) error

	// Navigate applies a pager movement.
	// Returns domain.ErrValidation for an unknown movement.
	Navigate(ctx context.Context, nav PageNav) error
}
