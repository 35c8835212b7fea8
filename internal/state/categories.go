package state

import (
	"slices"

	"github.com/jsamuelsen11/todosync/internal/domain/category"
)

// CategoryStore holds the read-only category collection.
type CategoryStore struct {
	categories []category.Category
	status     Lifecycle
}

// NewCategoryStore returns an empty store in the idle phase.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{status: Idle()}
}

// Load replaces the categories with a fetched snapshot.
func (s *CategoryStore) Load(categories []category.Category) {
	s.categories = slices.Clone(categories)
	s.status = Succeeded()
}

// BeginLoad marks a fetch as outstanding.
func (s *CategoryStore) BeginLoad() { s.status = Loading() }

// FailLoad records a failed fetch and keeps the previous categories.
func (s *CategoryStore) FailLoad(message string) { s.status = Failed(message) }

// Status returns the current lifecycle.
func (s *CategoryStore) Status() Lifecycle { return s.status }

// Categories returns a copy of the categories.
func (s *CategoryStore) Categories() []category.Category {
	return slices.Clone(s.categories)
}

// ColorOf resolves a category name to its color.
func (s *CategoryStore) ColorOf(name string) (string, bool) {
	return category.ColorOf(s.categories, name)
}
