package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/domain/category"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/state"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          "1",
		Text:        "Buy groceries",
		Description: "Milk, eggs, bread",
		Category:    "home",
	}
}

// snapshotOf builds a loaded snapshot paginating todos two at a time.
func snapshotOf(todos ...todo.Todo) state.Snapshot {
	total := len(todos)
	pages := (total + 1) / 2
	return state.Snapshot{
		Todos:          todos,
		TodoStatus:     state.Succeeded(),
		Categories:     []category.Category{{ID: "c1", Name: "home", Color: "#00ff00"}},
		CategoryStatus: state.Succeeded(),
		Filter:         todo.Filter{Status: todo.StatusAll},
		CurrentPage:    1,
		ItemsPerPage:   2,

		TotalFilteredItems: total,
		TotalPages:         pages,
		LastUpdated:        testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
