// Package todo holds the Todo entity, its create input, status filtering and
// summary statistics.
package todo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

// Todo represents a single task record. ID is opaque: drafts carry a
// client-generated UUID until the server confirms them with its own id.
type Todo struct {
	ID          string
	Text        string
	Description string
	Category    string
	Completed   bool
}

// Uncategorized reports whether the todo has no category.
func (t *Todo) Uncategorized() bool {
	return t.Category == ""
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Text) == "" {
		fields["text"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Input is the create intent for a new todo.
type Input struct {
	Text        string
	Category    string
	Description string
	Completed   bool
}

// Validate checks that the input can become a todo.
func (in *Input) Validate() error {
	if strings.TrimSpace(in.Text) == "" {
		return &domain.ValidationError{Fields: map[string]string{"text": domain.MsgRequired}}
	}
	return nil
}

// NewDraft builds a todo from the input with a fresh client-side id.
func NewDraft(in Input) Todo {
	return Todo{
		ID:          NewID(),
		Text:        in.Text,
		Description: in.Description,
		Category:    in.Category,
		Completed:   in.Completed,
	}
}

// NewID returns a random candidate id for a draft todo.
func NewID() string {
	return uuid.NewString()
}
