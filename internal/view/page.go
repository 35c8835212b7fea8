package view

import (
	"github.com/jsamuelsen11/todosync/internal/domain/category"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
)

// Item is a visible todo decorated for display.
type Item struct {
	todo.Todo
	// Color is the display color of the todo's category, empty when the
	// todo is uncategorized or the category is unknown.
	Color string
}

// Page is the fully resolved view handed to the presentation layer.
type Page struct {
	Items         []Item
	FilteredCount int
	TotalCount    int
	CurrentPage   int
	ItemsPerPage  int
	TotalPages    int
	Filter        todo.Filter
}

// HasPrev reports whether a previous page exists.
func (p *Page) HasPrev() bool { return p.CurrentPage > 1 }

// HasNext reports whether a next page exists.
func (p *Page) HasNext() bool { return p.CurrentPage < p.TotalPages }

// Empty reports whether nothing is visible on the current page.
func (p *Page) Empty() bool { return len(p.Items) == 0 }

// Input bundles everything Build needs.
type Input struct {
	Todos        []todo.Todo
	Categories   []category.Category
	Filter       todo.Filter
	CurrentPage  int
	ItemsPerPage int
}

// Build resolves in and decorates each visible todo with its category color.
func Build(in Input) Page {
	visible, count := Resolve(in.Todos, in.Filter, in.CurrentPage, in.ItemsPerPage)

	items := make([]Item, len(visible))
	for i := range visible {
		color, _ := category.ColorOf(in.Categories, visible[i].Category)
		items[i] = Item{Todo: visible[i], Color: color}
	}

	return Page{
		Items:         items,
		FilteredCount: count,
		TotalCount:    len(in.Todos),
		CurrentPage:   in.CurrentPage,
		ItemsPerPage:  in.ItemsPerPage,
		TotalPages:    TotalPages(count, in.ItemsPerPage),
		Filter:        in.Filter,
	}
}
