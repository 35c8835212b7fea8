package state

import (
	"sync"
	"time"

	"github.com/jsamuelsen11/todosync/internal/domain/category"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/view"
)

// State groups the components mutated by a dispatch.
type State struct {
	Todos      *TodoStore
	Categories *CategoryStore
	Filter     *FilterState
	Pagination *PaginationState
}

// Snapshot is a read-only copy of the whole state at one point in time.
type Snapshot struct {
	Todos              []todo.Todo
	TodoStatus         Lifecycle
	Categories         []category.Category
	CategoryStatus     Lifecycle
	Filter             todo.Filter
	CurrentPage        int
	ItemsPerPage       int
	TotalFilteredItems int
	TotalPages         int
	LastUpdated        time.Time
}

// Page resolves the visible page from the snapshot.
func (s Snapshot) Page() view.Page {
	return view.Build(view.Input{
		Todos:        s.Todos,
		Categories:   s.Categories,
		Filter:       s.Filter,
		CurrentPage:  s.CurrentPage,
		ItemsPerPage: s.ItemsPerPage,
	})
}

// Stats summarizes the full todo collection of the snapshot.
func (s Snapshot) Stats() todo.Stats {
	return todo.Summarize(s.Todos)
}

// Store is the dispatch root. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	state       State
	lastUpdated time.Time

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

// New returns an empty store paginating itemsPerPage todos at a time.
func New(itemsPerPage int) *Store {
	return &Store{
		state: State{
			Todos:      NewTodoStore(),
			Categories: NewCategoryStore(),
			Filter:     NewFilterState(),
			Pagination: NewPaginationState(itemsPerPage),
		},
		subs: make(map[int]chan struct{}),
	}
}

// Dispatch applies fn as one serialized transition, then reconciles
// pagination with the new filtered count and notifies subscribers.
func (s *Store) Dispatch(fn func(st *State)) {
	_ = s.DispatchErr(func(st *State) error {
		fn(st)
		return nil
	})
}

// DispatchErr is Dispatch for transitions that can be rejected. The
// reconciliation still runs when fn fails, since fn may have applied part of
// its change.
func (s *Store) DispatchErr(fn func(st *State) error) error {
	s.mu.Lock()
	err := fn(&s.state)
	s.reconcile()
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	s.notify()
	return err
}

// reconcile feeds the filtered count of the current collection back into
// pagination. Must be called with mu held.
func (s *Store) reconcile() {
	filter := s.state.Filter.Filter()
	count := 0
	for i := range s.state.Todos.todos {
		if filter.Matches(&s.state.Todos.todos[i]) {
			count++
		}
	}
	s.state.Pagination.SetTotalFilteredItems(count)
}

// Read runs fn with shared access to the state. fn must not mutate it.
func (s *Store) Read(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.state.Pagination
	return Snapshot{
		Todos:              s.state.Todos.Todos(),
		TodoStatus:         s.state.Todos.Status(),
		Categories:         s.state.Categories.Categories(),
		CategoryStatus:     s.state.Categories.Status(),
		Filter:             s.state.Filter.Filter(),
		CurrentPage:        p.CurrentPage(),
		ItemsPerPage:       p.ItemsPerPage(),
		TotalFilteredItems: p.TotalFilteredItems(),
		TotalPages:         p.TotalPages(),
		LastUpdated:        s.lastUpdated,
	}
}

// Subscribe returns a channel that receives a value after each dispatch.
// Notifications coalesce: a slow reader sees at most one pending signal and
// should re-read Snapshot. The returned func unsubscribes and closes the
// channel.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
