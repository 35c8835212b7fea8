package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/state"
)

// maxJSONBodyBytes caps request bodies at 1 MiB.
const maxJSONBodyBytes = 1 << 20

// parseID returns the named path parameter. Ids are opaque; only blank ones
// are rejected.
func parseID(r *http.Request, param string) (string, error) {
	id := chi.URLParam(r, param)
	if strings.TrimSpace(id) == "" {
		return "", &domain.ValidationError{Fields: map[string]string{param: domain.MsgRequired}}
	}
	return id, nil
}

func findTodo(snap *state.Snapshot, id string) (todo.Todo, bool) {
	i := slices.IndexFunc(snap.Todos, func(t todo.Todo) bool { return t.ID == id })
	if i < 0 {
		return todo.Todo{}, false
	}
	return snap.Todos[i], true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", slog.Any("error", err))
	}
}

// writeView responds 200 with the resolved page of snap.
func writeView(w http.ResponseWriter, snap state.Snapshot) {
	writeJSON(w, http.StatusOK, dto.ToViewResponse(&snap))
}

// decodeAndValidate fills dst from the JSON body and validates it. On
// failure the 400 problem response is already written and false is
// returned.
func decodeAndValidate[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request, dst T) bool {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": "invalid JSON"}})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
