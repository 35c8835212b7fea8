package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/ports"
	"github.com/jsamuelsen11/todosync/internal/state"
)

// Compile-time check that ViewService implements ports.ViewService.
var _ ports.ViewService = (*ViewService)(nil)

// ViewService implements ports.ViewService on top of the state container.
// None of its intents reach the remote resource.
type ViewService struct {
	store  *state.Store
	logger *slog.Logger
}

// NewViewService creates a ViewService. A nil logger discards output.
func NewViewService(store *state.Store, logger *slog.Logger) *ViewService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ViewService{store: store, logger: logger}
}

// Snapshot returns a copy of the current state.
func (s *ViewService) Snapshot(_ context.Context) state.Snapshot {
	return s.store.Snapshot()
}

// SetStatusFilter changes the status filter.
func (s *ViewService) SetStatusFilter(ctx context.Context, status todo.StatusFilter) error {
	s.logger.DebugContext(ctx, "setting status filter", slog.String("status", status.String()))

	return s.store.DispatchErr(func(st *state.State) error {
		return st.Filter.SetStatusFilter(status)
	})
}

// SetCategoryFilter changes the category filter.
func (s *ViewService) SetCategoryFilter(ctx context.Context, category string) {
	s.logger.DebugContext(ctx, "setting category filter", slog.String("category", category))

	s.store.Dispatch(func(st *state.State) {
		st.Filter.SetCategoryFilter(category)
	})
}

// SetPage moves to page n clamped to [1, total pages].
func (s *ViewService) SetPage(ctx context.Context, n int) {
	s.logger.DebugContext(ctx, "setting page", slog.Int("page", n))

	s.store.Dispatch(func(st *state.State) {
		st.Pagination.SetCurrentPage(min(n, st.Pagination.TotalPages()))
	})
}

// SetItemsPerPage changes the page size and returns to the first page.
func (s *ViewService) SetItemsPerPage(ctx context.Context, n int) error {
	s.logger.DebugContext(ctx, "setting items per page", slog.Int("items_per_page", n))

	return s.store.DispatchErr(func(st *state.State) error {
		return st.Pagination.SetItemsPerPage(n)
	})
}

// Navigate applies a pager movement.
func (s *ViewService) Navigate(ctx context.Context, nav ports.PageNav) error {
	var move func(p *state.PaginationState)
	switch nav {
	case ports.PageFirst:
		move = (*state.PaginationState).First
	case ports.PagePrev:
		move = (*state.PaginationState).Prev
	case ports.PageNext:
		move = (*state.PaginationState).Next
	case ports.PageLast:
		move = (*state.PaginationState).Last
	default:
		return &domain.ValidationError{Fields: map[string]string{
			"nav": fmt.Sprintf("unknown movement %q", nav),
		}}
	}

	s.logger.DebugContext(ctx, "navigating pages", slog.String("nav", string(nav)))
	s.store.Dispatch(func(st *state.State) { move(st.Pagination) })
	return nil
}
