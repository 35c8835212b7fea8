package ports

import (
	"context"

	"github.com/jsamuelsen11/todosync/internal/domain/category"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
)

// TodoClient defines the client port for the remote todo collection.
// Implemented by the ACL adapter; called by the synchronizer.
//
// Every method fails with an error wrapping domain.ErrNetwork when the
// request never completed, or domain.ErrRejected (plus a finer sentinel when
// the status identifies one) for any non-2xx response.
type TodoClient interface {
	// ListTodos returns the whole collection in server order.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// CreateTodo sends t, whose ID is a client-side candidate, and returns
	// the record as stored by the server. The server id wins.
	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// SetCompleted patches the completion flag. The returned todo is nil
	// when the server answered with an empty body.
	SetCompleted(ctx context.Context, id string, completed bool) (*todo.Todo, error)

	// SetDescription patches the description. The returned todo is nil
	// when the server answered with an empty body.
	SetDescription(ctx context.Context, id, description string) (*todo.Todo, error)

	// DeleteTodo deletes a todo by ID. The response body is ignored.
	DeleteTodo(ctx context.Context, id string) error
}

// CategoryClient defines the client port for the read-only category
// collection.
type CategoryClient interface {
	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]category.Category, error)
}
