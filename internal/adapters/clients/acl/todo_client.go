package acl

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/todosync/internal/adapters/clients/acl/todo"
	tododomain "github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/platform/httpclient"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoClient = (*TodoClient)(nil)

const todosPath = "/todos"

// TodoClient is the outbound adapter for the remote todo collection. It
// implements [ports.TodoClient] against a json-server style REST resource.
//
// Responses are translated by the [todo] subpackage and HTTP errors are
// mapped to domain errors by [TranslateHTTPError]. The underlying
// [httpclient.Client] provides circuit breaking, retry, tracing, and health
// checking for every outbound call.
type TodoClient struct {
	req    *Requester
	client *httpclient.Client
}

// NewTodoClient creates a TodoClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL points at the resource root
// (e.g. "http://localhost:3000").
func NewTodoClient(client *httpclient.Client, logger *slog.Logger) *TodoClient {
	return &TodoClient{
		req:    NewRequester(client, logger),
		client: client,
	}
}

// ListTodos fetches the whole collection from GET /todos in server order.
func (c *TodoClient) ListTodos(ctx context.Context) ([]tododomain.Todo, error) {
	var dtos []todo.TodoDTO
	if err := c.req.Do(ctx, http.MethodGet, todosPath, nil, &dtos); err != nil {
		return nil, err
	}
	return todo.ToDomainTodoList(dtos), nil
}

// CreateTodo sends POST /todos with the draft, including its candidate id,
// and returns the record as stored by the server.
func (c *TodoClient) CreateTodo(ctx context.Context, t *tododomain.Todo) (*tododomain.Todo, error) {
	var respDTO todo.TodoDTO
	if err := c.req.Do(ctx, http.MethodPost, todosPath, todo.ToCreateTodoRequest(t), &respDTO); err != nil {
		if !errors.Is(err, errEmptyBody) {
			return nil, err
		}
		// An empty 2xx body confirms the draft as sent.
		created := *t
		return &created, nil
	}
	created := todo.ToCreatedTodo(&respDTO, t)
	return &created, nil
}

// SetCompleted sends PATCH /todos/{id} with {"completed": ...}.
func (c *TodoClient) SetCompleted(ctx context.Context, id string, completed bool) (*tododomain.Todo, error) {
	return c.patch(ctx, id, todo.SetCompletedRequestDTO{Completed: completed})
}

// SetDescription sends PATCH /todos/{id} with {"description": ...}.
func (c *TodoClient) SetDescription(ctx context.Context, id, description string) (*tododomain.Todo, error) {
	return c.patch(ctx, id, todo.SetDescriptionRequestDTO{Description: description})
}

// DeleteTodo sends DELETE /todos/{id}. The response body is ignored.
func (c *TodoClient) DeleteTodo(ctx context.Context, id string) error {
	return c.req.Do(ctx, http.MethodDelete, todoPath(id), nil, nil)
}

// patch returns nil when the server answered with an empty body.
func (c *TodoClient) patch(ctx context.Context, id string, body any) (*tododomain.Todo, error) {
	var respDTO todo.TodoDTO
	if err := c.req.Do(ctx, http.MethodPatch, todoPath(id), body, &respDTO); err != nil {
		if errors.Is(err, errEmptyBody) {
			return nil, nil //nolint:nilnil // an empty body is a successful patch without a record
		}
		return nil, err
	}
	updated := todo.ToDomainTodo(&respDTO)
	if updated.ID == "" {
		updated.ID = id
	}
	return &updated, nil
}

func todoPath(id string) string {
	return todosPath + "/" + url.PathEscape(id)
}
