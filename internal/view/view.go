// Package view derives the visible slice of todos from the collection, the
// active filters, and the pagination settings. Everything here is a pure
// function over values passed in: nothing is cached between calls, so a
// result can never be stale relative to its inputs.
package view

import (
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
)

// Resolve filters todos by status and category and returns the page to
// render together with the number of todos that passed the filters.
//
// The page is the half-open range [(page-1)*perPage, page*perPage) of the
// filtered sequence, clamped to its bounds; an out-of-range page yields an
// empty slice. Insertion order is preserved. A perPage below 1 yields an
// empty page but still reports the filtered count.
func Resolve(todos []todo.Todo, filter todo.Filter, page, perPage int) ([]todo.Todo, int) {
	filtered := Filter(todos, filter)
	return Paginate(filtered, page, perPage), len(filtered)
}

// Filter returns the todos that pass f, in their original order. The
// returned slice never aliases todos.
func Filter(todos []todo.Todo, f todo.Filter) []todo.Todo {
	out := make([]todo.Todo, 0, len(todos))
	for i := range todos {
		if f.Matches(&todos[i]) {
			out = append(out, todos[i])
		}
	}
	return out
}

// Paginate returns the page-th slice of size perPage from items.
func Paginate(items []todo.Todo, page, perPage int) []todo.Todo {
	if perPage <= 0 || page < 1 {
		return []todo.Todo{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []todo.Todo{}
	}
	end := min(start+perPage, len(items))
	out := make([]todo.Todo, end-start)
	copy(out, items[start:end])
	return out
}

// TotalPages returns ceil(total/perPage), never less than 1.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
