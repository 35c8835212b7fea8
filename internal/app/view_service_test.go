package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/ports"
	"github.com/jsamuelsen11/todosync/internal/state"
)

// newViewService returns a service over n todos where every third one is
// completed.
func newViewService(t *testing.T, n int) *ViewService {
	t.Helper()

	todos := make([]todo.Todo, n)
	for i := range todos {
		todos[i] = todo.Todo{
			ID:        fmt.Sprint(i + 1),
			Text:      fmt.Sprint("todo ", i+1),
			Category:  []string{"home", "work"}[i%2],
			Completed: i%3 == 0,
		}
	}
	store := state.New(state.DefaultItemsPerPage)
	store.Dispatch(func(st *state.State) { st.Todos.Load(todos) })
	return NewViewService(store, nil)
}

func TestViewService_SetStatusFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    todo.StatusFilter
		wantCount int
		wantErr   error
	}{
		{name: "all", status: todo.StatusAll, wantCount: 12},
		{name: "completed", status: todo.StatusCompleted, wantCount: 4},
		{name: "active", status: todo.StatusActive, wantCount: 8},
		{name: "invalid keeps previous", status: todo.StatusFilter("done"), wantCount: 12, wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newViewService(t, 12)
			ctx := context.Background()

			err := svc.SetStatusFilter(ctx, tt.status)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCount, svc.Snapshot(ctx).TotalFilteredItems)
		})
	}
}

func TestViewService_SetCategoryFilter(t *testing.T) {
	t.Parallel()
	svc := newViewService(t, 12)
	ctx := context.Background()

	svc.SetPage(ctx, 3)
	svc.SetCategoryFilter(ctx, "work")

	snap := svc.Snapshot(ctx)
	assert.Equal(t, 6, snap.TotalFilteredItems)
	assert.Equal(t, 2, snap.CurrentPage, "page clamps to the narrower result")

	svc.SetCategoryFilter(ctx, "")
	assert.Equal(t, 12, svc.Snapshot(ctx).TotalFilteredItems)
}

func TestViewService_SetPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page int
		want int
	}{
		{name: "within range", page: 2, want: 2},
		{name: "beyond last", page: 9, want: 3},
		{name: "zero", page: 0, want: 1},
		{name: "negative", page: -4, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newViewService(t, 12)
			ctx := context.Background()

			svc.SetPage(ctx, tt.page)
			assert.Equal(t, tt.want, svc.Snapshot(ctx).CurrentPage)
		})
	}
}

func TestViewService_SetItemsPerPage(t *testing.T) {
	t.Parallel()
	svc := newViewService(t, 12)
	ctx := context.Background()

	svc.SetPage(ctx, 3)
	require.NoError(t, svc.SetItemsPerPage(ctx, 4))

	snap := svc.Snapshot(ctx)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, 3, snap.TotalPages)

	err := svc.SetItemsPerPage(ctx, 0)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 4, svc.Snapshot(ctx).ItemsPerPage)
}

func TestViewService_Navigate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start int
		nav   ports.PageNav
		want  int
	}{
		{name: "next", start: 1, nav: ports.PageNext, want: 2},
		{name: "next on last stays", start: 3, nav: ports.PageNext, want: 3},
		{name: "prev", start: 2, nav: ports.PagePrev, want: 1},
		{name: "prev on first stays", start: 1, nav: ports.PagePrev, want: 1},
		{name: "first", start: 3, nav: ports.PageFirst, want: 1},
		{name: "last", start: 1, nav: ports.PageLast, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newViewService(t, 12)
			ctx := context.Background()
			svc.SetPage(ctx, tt.start)

			require.NoError(t, svc.Navigate(ctx, tt.nav))
			assert.Equal(t, tt.want, svc.Snapshot(ctx).CurrentPage)
		})
	}

	t.Run("unknown movement", func(t *testing.T) {
		t.Parallel()
		svc := newViewService(t, 12)

		err := svc.Navigate(context.Background(), ports.PageNav("sideways"))
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "nav")
	})
}
