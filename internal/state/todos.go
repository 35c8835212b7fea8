package state

import (
	"slices"

	"github.com/jsamuelsen11/todosync/internal/domain/todo"
)

// TodoStore holds the local copy of the todo collection and its request
// lifecycle. Insertion order is the canonical display order. Operations on an
// id that is not present are silent no-ops: the remote resource stays
// authoritative, and a missing local entry must never break the view.
//
// TodoStore is not safe for concurrent use on its own; it is mutated only
// inside Store.Dispatch.
type TodoStore struct {
	todos  []todo.Todo
	status Lifecycle
}

// NewTodoStore returns an empty store in the idle phase.
func NewTodoStore() *TodoStore {
	return &TodoStore{status: Idle()}
}

// Load replaces the collection with a server-confirmed snapshot and marks
// the lifecycle succeeded.
func (s *TodoStore) Load(todos []todo.Todo) {
	s.todos = slices.Clone(todos)
	s.status = Succeeded()
}

// BeginLoad marks a fetch as outstanding.
func (s *TodoStore) BeginLoad() {
	s.status = Loading()
}

// FailLoad records a failed fetch. The previous collection is kept.
func (s *TodoStore) FailLoad(message string) {
	s.status = Failed(message)
}

// Fail records a failed mutation without touching the collection.
func (s *TodoStore) Fail(message string) {
	s.status = Failed(message)
}

// ClearError returns a failed lifecycle to idle. Other phases are left as
// they are so that a mutation never hides an outstanding fetch.
func (s *TodoStore) ClearError() {
	if s.status.Phase() == PhaseFailed {
		s.status = Idle()
	}
}

// Status returns the current lifecycle.
func (s *TodoStore) Status() Lifecycle {
	return s.status
}

// Add appends t to the end of the collection. If a todo with the same id is
// already present it is replaced in place, keeping ids unique. Reports
// whether t was appended.
func (s *TodoStore) Add(t todo.Todo) bool {
	if i := s.index(t.ID); i >= 0 {
		s.todos[i] = t
		return false
	}
	s.todos = append(s.todos, t)
	return true
}

// InsertAt places t at index, clamped to the collection bounds. Used to
// restore a removed todo at its original position.
func (s *TodoStore) InsertAt(index int, t todo.Todo) {
	if i := s.index(t.ID); i >= 0 {
		s.todos[i] = t
		return
	}
	index = max(0, min(index, len(s.todos)))
	s.todos = slices.Insert(s.todos, index, t)
}

// Remove deletes the todo with the given id. Reports whether it was present.
func (s *TodoStore) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.todos = slices.Delete(s.todos, i, i+1)
	return true
}

// SetCompleted sets Completed on the matching todo.
func (s *TodoStore) SetCompleted(id string, completed bool) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.todos[i].Completed = completed
	return true
}

// SetDescription replaces the description of the matching todo.
func (s *TodoStore) SetDescription(id, text string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.todos[i].Description = text
	return true
}

// Replace swaps the todo with the given id for t, which may carry a
// different id (a server-assigned one replacing a draft id).
func (s *TodoStore) Replace(id string, t todo.Todo) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	if t.ID != id {
		// Drop any entry that already holds the new id so ids stay unique.
		if j := s.index(t.ID); j >= 0 {
			s.todos = slices.Delete(s.todos, j, j+1)
			if j < i {
				i--
			}
		}
	}
	s.todos[i] = t
	return true
}

// Find returns a copy of the todo with the given id and its position.
func (s *TodoStore) Find(id string) (todo.Todo, int, bool) {
	i := s.index(id)
	if i < 0 {
		return todo.Todo{}, -1, false
	}
	return s.todos[i], i, true
}

// Todos returns a copy of the collection.
func (s *TodoStore) Todos() []todo.Todo {
	return slices.Clone(s.todos)
}

// Len returns the number of todos.
func (s *TodoStore) Len() int {
	return len(s.todos)
}

func (s *TodoStore) index(id string) int {
	return slices.IndexFunc(s.todos, func(t todo.Todo) bool { return t.ID == id })
}
