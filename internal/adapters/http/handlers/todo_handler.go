package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// TodoHandler handles the intents that reach the remote resource: creating,
// changing, deleting and refreshing todos.
type TodoHandler struct {
	sync ports.SyncService
	view ports.ViewService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(sync ports.SyncService, view ports.ViewService) *TodoHandler {
	return &TodoHandler{sync: sync, view: view}
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.sync.CreateTodo(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(created))
}

// UpdateTodo handles PATCH /api/v1/todos/{id}. "completed" is the desired
// state and needs the todo to be known locally; "description" is sent even
// for unknown ids. Responds with the todo as now stored, or 204 when it is
// not in the store.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	if req.Completed != nil {
		snap := h.view.Snapshot(ctx)
		current, ok := findTodo(&snap, id)
		if !ok {
			dto.WriteErrorResponse(w, r, fmt.Errorf("todo %q: %w", id, domain.ErrNotFound))
			return
		}
		if current.Completed != *req.Completed {
			if err := h.sync.ToggleTodo(ctx, id); err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}
		}
	}

	if req.Description != nil {
		if err := h.sync.UpdateDescription(ctx, id, *req.Description); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	snap := h.view.Snapshot(ctx)
	updated, ok := findTodo(&snap, id)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTodoResponse(&updated))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.sync.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Refresh handles POST /api/v1/refresh. It fetches todos and categories and
// responds with the resolved view. The view is returned even when a fetch
// failed: the failure is reported in its lifecycle and the error response is
// reserved for requests that could not run at all.
func (h *TodoHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.sync.Refresh(r.Context()); err != nil && !domain.IsRemoteFailure(err) {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeView(w, h.view.Snapshot(r.Context()))
}
