package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/todosync/internal/domain/todo"
)

func seeded(ids ...string) *TodoStore {
	s := NewTodoStore()
	todos := make([]todo.Todo, 0, len(ids))
	for _, id := range ids {
		todos = append(todos, todo.Todo{ID: id, Text: "todo " + id})
	}
	s.Load(todos)
	return s
}

func ids(todos []todo.Todo) []string {
	out := make([]string, len(todos))
	for i := range todos {
		out[i] = todos[i].ID
	}
	return out
}

func TestTodoStore_Load(t *testing.T) {
	t.Parallel()

	s := NewTodoStore()
	assert.Equal(t, PhaseIdle, s.Status().Phase())

	s.BeginLoad()
	assert.True(t, s.Status().Loading())

	input := []todo.Todo{{ID: "1", Text: "a"}, {ID: "2", Text: "b"}}
	s.Load(input)
	input[0].Text = "mutated"

	assert.Equal(t, PhaseSucceeded, s.Status().Phase())
	assert.Equal(t, "a", s.Todos()[0].Text, "Load must copy its input")
}

func TestTodoStore_FailLoadKeepsCollection(t *testing.T) {
	t.Parallel()

	s := seeded("1", "2")
	s.BeginLoad()
	s.FailLoad("boom")

	msg, failed := s.Status().Error()
	assert.True(t, failed)
	assert.Equal(t, "boom", msg)
	assert.Equal(t, []string{"1", "2"}, ids(s.Todos()))
}

func TestTodoStore_Add(t *testing.T) {
	t.Parallel()

	s := seeded("1")
	assert.True(t, s.Add(todo.Todo{ID: "2", Text: "b"}))
	assert.Equal(t, []string{"1", "2"}, ids(s.Todos()))

	// Same id replaces in place.
	assert.False(t, s.Add(todo.Todo{ID: "1", Text: "renamed"}))
	assert.Equal(t, []string{"1", "2"}, ids(s.Todos()))
	got, _, _ := s.Find("1")
	assert.Equal(t, "renamed", got.Text)
}

func TestTodoStore_RemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	s := seeded("1", "2", "3")
	before := s.Todos()

	assert.False(t, s.Remove("nonexistent-id"))
	if diff := cmp.Diff(before, s.Todos()); diff != "" {
		t.Errorf("collection changed (-before +after):\n%s", diff)
	}
}

func TestTodoStore_SetCompleted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		id     string
		values []bool
		want   bool
		found  bool
	}{
		{name: "sets true", id: "1", values: []bool{true}, want: true, found: true},
		{name: "same value twice is idempotent", id: "1", values: []bool{true, true}, want: true, found: true},
		{name: "restores false", id: "1", values: []bool{true, false}, want: false, found: true},
		{name: "missing id is a no-op", id: "missing", values: []bool{true}, want: false, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := seeded("1")
			for _, v := range tt.values {
				assert.Equal(t, tt.found, s.SetCompleted(tt.id, v))
			}
			got, _, _ := s.Find("1")
			assert.Equal(t, tt.want, got.Completed)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestTodoStore_SetDescription(t *testing.T) {
	t.Parallel()

	s := seeded("1")
	assert.True(t, s.SetDescription("1", "details"))
	assert.False(t, s.SetDescription("missing", "details"))

	got, _, _ := s.Find("1")
	assert.Equal(t, "details", got.Description)
}

func TestTodoStore_Replace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seed    []string
		id      string
		newID   string
		wantOK  bool
		wantIDs []string
	}{
		{name: "draft id swapped for server id", seed: []string{"1", "draft", "3"}, id: "draft", newID: "2", wantOK: true, wantIDs: []string{"1", "2", "3"}},
		{name: "same id", seed: []string{"1", "2"}, id: "2", newID: "2", wantOK: true, wantIDs: []string{"1", "2"}},
		{name: "new id already present earlier", seed: []string{"2", "1", "draft"}, id: "draft", newID: "2", wantOK: true, wantIDs: []string{"1", "2"}},
		{name: "missing id", seed: []string{"1"}, id: "draft", newID: "2", wantOK: false, wantIDs: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := seeded(tt.seed...)
			ok := s.Replace(tt.id, todo.Todo{ID: tt.newID, Text: "x"})

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIDs, ids(s.Todos()))
		})
	}
}

func TestTodoStore_InsertAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		index   int
		wantIDs []string
	}{
		{name: "front", index: 0, wantIDs: []string{"x", "1", "2"}},
		{name: "middle", index: 1, wantIDs: []string{"1", "x", "2"}},
		{name: "past end clamps", index: 10, wantIDs: []string{"1", "2", "x"}},
		{name: "negative clamps", index: -3, wantIDs: []string{"x", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := seeded("1", "2")
			s.InsertAt(tt.index, todo.Todo{ID: "x", Text: "x"})
			assert.Equal(t, tt.wantIDs, ids(s.Todos()))
		})
	}
}

func TestTodoStore_ClearErrorLeavesLoading(t *testing.T) {
	t.Parallel()

	s := NewTodoStore()
	s.Fail("nope")
	s.ClearError()
	assert.Equal(t, PhaseIdle, s.Status().Phase())

	s.BeginLoad()
	s.ClearError()
	assert.Equal(t, PhaseLoading, s.Status().Phase())
}

// Arbitrary sequences of add/remove/toggle with distinct ids keep the size
// equal to adds minus removes of present ids.
func TestTodoStore_SequenceSize(t *testing.T) {
	t.Parallel()

	type op struct {
		kind string
		id   string
	}
	ops := []op{
		{"add", "a"}, {"add", "b"}, {"toggle", "a"}, {"remove", "zzz"},
		{"add", "c"}, {"remove", "b"}, {"toggle", "missing"}, {"remove", "b"},
		{"add", "d"}, {"remove", "a"}, {"toggle", "d"},
	}

	s := NewTodoStore()
	want := 0
	for _, o := range ops {
		switch o.kind {
		case "add":
			if s.Add(todo.Todo{ID: o.id, Text: o.id}) {
				want++
			}
		case "remove":
			if s.Remove(o.id) {
				want--
			}
		case "toggle":
			before := s.Len()
			s.SetCompleted(o.id, true)
			assert.Equal(t, before, s.Len())
		}
		assert.Equal(t, want, s.Len(), "after %s %s", o.kind, o.id)
	}
	assert.Equal(t, []string{"c", "d"}, ids(s.Todos()))
}
