package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
)

func TestFilterState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  todo.StatusFilter
		wantErr bool
		want    todo.StatusFilter
	}{
		{name: "all", status: todo.StatusAll, want: todo.StatusAll},
		{name: "active", status: todo.StatusActive, want: todo.StatusActive},
		{name: "completed", status: todo.StatusCompleted, want: todo.StatusCompleted},
		{name: "unknown rejected", status: "archived", wantErr: true, want: todo.StatusAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewFilterState()
			err := f.SetStatusFilter(tt.status)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, f.Filter().Status)
		})
	}
}

func TestFilterState_Category(t *testing.T) {
	t.Parallel()

	f := NewFilterState()
	assert.Equal(t, todo.Filter{Status: todo.StatusAll}, f.Filter())

	f.SetCategoryFilter("work")
	assert.Equal(t, "work", f.Filter().Category)

	f.SetCategoryFilter("")
	assert.Empty(t, f.Filter().Category)
}
