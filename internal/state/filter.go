package state

import (
	"fmt"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
)

// FilterState holds the selected status and category filters. It lives for
// the session only.
type FilterState struct {
	status   todo.StatusFilter
	category string
}

// NewFilterState returns the default filters: every status, no category.
func NewFilterState() *FilterState {
	return &FilterState{status: todo.StatusAll}
}

// SetStatusFilter replaces the status filter. Values outside the
// enumeration are rejected with a validation error.
func (f *FilterState) SetStatusFilter(status todo.StatusFilter) error {
	if !status.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", status),
		}}
	}
	f.status = status
	return nil
}

// SetCategoryFilter replaces the category filter. An empty value clears it.
func (f *FilterState) SetCategoryFilter(category string) {
	f.category = category
}

// Filter returns the current filters as a value.
func (f *FilterState) Filter() todo.Filter {
	return todo.Filter{Status: f.status, Category: f.category}
}
