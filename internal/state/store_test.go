package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todosync/internal/domain/category"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
)

func numbered(n int, completed func(i int) bool) []todo.Todo {
	todos := make([]todo.Todo, n)
	for i := range todos {
		todos[i] = todo.Todo{ID: fmt.Sprint(i + 1), Text: fmt.Sprint("todo ", i+1), Completed: completed(i)}
	}
	return todos
}

func TestStore_FilterChangeReclampsPage(t *testing.T) {
	t.Parallel()

	s := New(5)
	// 12 todos, 4 of them completed.
	s.Dispatch(func(st *State) {
		st.Todos.Load(numbered(12, func(i int) bool { return i%3 == 0 }))
	})
	s.Dispatch(func(st *State) { st.Pagination.SetCurrentPage(3) })

	snap := s.Snapshot()
	require.Equal(t, 3, snap.TotalPages)
	require.Equal(t, 3, snap.CurrentPage)

	err := s.DispatchErr(func(st *State) error {
		return st.Filter.SetStatusFilter(todo.StatusCompleted)
	})
	require.NoError(t, err)

	snap = s.Snapshot()
	assert.Equal(t, 4, snap.TotalFilteredItems)
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, 1, snap.TotalPages)
	assert.Len(t, snap.Page().Items, 4)
}

func TestStore_ItemsPerPageResetsPage(t *testing.T) {
	t.Parallel()

	s := New(5)
	s.Dispatch(func(st *State) {
		st.Todos.Load(numbered(12, func(int) bool { return false }))
		st.Pagination.SetCurrentPage(3)
	})

	require.NoError(t, s.DispatchErr(func(st *State) error {
		return st.Pagination.SetItemsPerPage(10)
	}))

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Equal(t, 2, snap.TotalPages)
}

func TestStore_RemovalOnLastPageClamps(t *testing.T) {
	t.Parallel()

	s := New(5)
	s.Dispatch(func(st *State) {
		st.Todos.Load(numbered(6, func(int) bool { return false }))
		st.Pagination.SetCurrentPage(2)
	})
	s.Dispatch(func(st *State) { st.Todos.Remove("6") })

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.CurrentPage)
	assert.Len(t, snap.Page().Items, 5)
}

func TestStore_RejectedDispatchLeavesState(t *testing.T) {
	t.Parallel()

	s := New(5)
	err := s.DispatchErr(func(st *State) error {
		return st.Filter.SetStatusFilter("bogus")
	})
	require.Error(t, err)
	assert.Equal(t, todo.StatusAll, s.Snapshot().Filter.Status)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	s := New(5)
	s.Dispatch(func(st *State) {
		st.Todos.Load([]todo.Todo{{ID: "1", Text: "a"}})
		st.Categories.Load([]category.Category{{ID: "c", Name: "work", Color: "blue"}})
	})

	snap := s.Snapshot()
	snap.Todos[0].Text = "changed"
	snap.Categories[0].Color = "red"

	again := s.Snapshot()
	assert.Equal(t, "a", again.Todos[0].Text)
	assert.Equal(t, "blue", again.Categories[0].Color)
	assert.False(t, again.LastUpdated.IsZero())
}

func TestStore_PageCarriesColors(t *testing.T) {
	t.Parallel()

	s := New(5)
	s.Dispatch(func(st *State) {
		st.Todos.Load([]todo.Todo{
			{ID: "1", Text: "a", Category: "work"},
			{ID: "2", Text: "b"},
		})
		st.Categories.Load([]category.Category{{ID: "c", Name: "work", Color: "blue"}})
	})

	snap := s.Snapshot()
	page := snap.Page()
	require.Len(t, page.Items, 2)
	assert.Equal(t, "blue", page.Items[0].Color)
	assert.Empty(t, page.Items[1].Color)

	stats := snap.Stats()
	assert.Equal(t, 2, stats.Total)
}

func TestStore_Subscribe(t *testing.T) {
	t.Parallel()

	s := New(5)
	ch, unsubscribe := s.Subscribe()

	s.Dispatch(func(st *State) { st.Todos.Add(todo.Todo{ID: "1", Text: "a"}) })
	s.Dispatch(func(st *State) { st.Todos.Add(todo.Todo{ID: "2", Text: "b"}) })

	// Coalesced into a single pending signal.
	<-ch
	select {
	case <-ch:
		t.Fatal("expected notifications to coalesce")
	default:
	}

	unsubscribe()
	unsubscribe()
	_, open := <-ch
	assert.False(t, open)

	// Dispatch after unsubscribe must not panic.
	s.Dispatch(func(st *State) { st.Todos.Remove("1") })
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	t.Parallel()

	s := New(5)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(func(st *State) {
				st.Todos.Add(todo.Todo{ID: fmt.Sprint(i), Text: "t"})
			})
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Len(t, snap.Todos, 50)
	assert.Equal(t, 50, snap.TotalFilteredItems)
	assert.Equal(t, 10, snap.TotalPages)
}
