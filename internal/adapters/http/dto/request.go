package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustPositive = "must be positive"
	msgNoChange     = "at least one field is required"
)

// CreateTodoRequest represents the JSON body for creating a new todo.
type CreateTodoRequest struct {
	Text        string `json:"text"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &domain.ValidationError{Fields: map[string]string{"text": msgRequired}}
	}
	return nil
}

// ToInput converts the request to a domain create intent.
func (r *CreateTodoRequest) ToInput() todo.Input {
	return todo.Input{
		Text:        r.Text,
		Category:    r.Category,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// UpdateTodoRequest represents the JSON body for changing a todo.
// Nil means "do not change this field". Completed is the desired state; it
// is applied as a toggle only when it differs from the current one.
type UpdateTodoRequest struct {
	Completed   *bool   `json:"completed,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that the request changes something.
func (r *UpdateTodoRequest) Validate() error {
	if r.Completed == nil && r.Description == nil {
		return &domain.ValidationError{Fields: map[string]string{"body": msgNoChange}}
	}
	return nil
}

// FilterRequest represents the JSON body for changing the filters.
// An empty category clears the category filter.
type FilterRequest struct {
	Status   *string `json:"status,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Validate checks that any provided status is part of the enumeration.
func (r *FilterRequest) Validate() error {
	fields := make(map[string]string)

	if r.Status == nil && r.Category == nil {
		fields["body"] = msgNoChange
	}
	if r.Status != nil && !todo.StatusFilter(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// PaginationRequest represents the JSON body for changing pagination. When
// both fields are set, the page size is applied first.
type PaginationRequest struct {
	Page         *int `json:"page,omitempty"`
	ItemsPerPage *int `json:"items_per_page,omitempty"`
}

// Validate checks that any provided page size is positive.
func (r *PaginationRequest) Validate() error {
	fields := make(map[string]string)

	if r.Page == nil && r.ItemsPerPage == nil {
		fields["body"] = msgNoChange
	}
	if r.ItemsPerPage != nil && *r.ItemsPerPage <= 0 {
		fields["items_per_page"] = fmt.Sprintf("%s, got %d", msgMustPositive, *r.ItemsPerPage)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
