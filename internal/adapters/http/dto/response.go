// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the view API.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todosync/internal/domain/category"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/state"
	"github.com/jsamuelsen11/todosync/internal/view"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
	Color       string `json:"color,omitempty"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Text:        t.Text,
		Description: t.Description,
		Category:    t.Category,
		Completed:   t.Completed,
	}
}

// LifecycleResponse is the request state of a collection.
type LifecycleResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ToLifecycleResponse converts a state.Lifecycle.
func ToLifecycleResponse(l state.Lifecycle) LifecycleResponse {
	msg, _ := l.Error()
	return LifecycleResponse{Status: l.Phase().String(), Error: msg}
}

// FilterResponse echoes the active filters.
type FilterResponse struct {
	Status   string `json:"status"`
	Category string `json:"category"`
}

// ViewResponse is the resolved page shown to the presentation layer.
type ViewResponse struct {
	Items         []TodoResponse    `json:"items"`
	FilteredCount int               `json:"filtered_count"`
	TotalCount    int               `json:"total_count"`
	CurrentPage   int               `json:"current_page"`
	ItemsPerPage  int               `json:"items_per_page"`
	TotalPages    int               `json:"total_pages"`
	HasPrev       bool              `json:"has_prev"`
	HasNext       bool              `json:"has_next"`
	Filter        FilterResponse    `json:"filter"`
	Lifecycle     LifecycleResponse `json:"lifecycle"`
	LastUpdated   string            `json:"last_updated,omitempty"`
}

// ToViewResponse resolves the visible page of snap.
func ToViewResponse(snap *state.Snapshot) ViewResponse {
	page := snap.Page()

	items := make([]TodoResponse, len(page.Items))
	for i := range page.Items {
		items[i] = toItemResponse(&page.Items[i])
	}

	resp := ViewResponse{
		Items:         items,
		FilteredCount: page.FilteredCount,
		TotalCount:    page.TotalCount,
		CurrentPage:   page.CurrentPage,
		ItemsPerPage:  page.ItemsPerPage,
		TotalPages:    page.TotalPages,
		HasPrev:       page.HasPrev(),
		HasNext:       page.HasNext(),
		Filter: FilterResponse{
			Status:   page.Filter.Status.String(),
			Category: page.Filter.Category,
		},
		Lifecycle: ToLifecycleResponse(snap.TodoStatus),
	}
	if !snap.LastUpdated.IsZero() {
		resp.LastUpdated = snap.LastUpdated.UTC().Format(time.RFC3339)
	}
	return resp
}

func toItemResponse(item *view.Item) TodoResponse {
	resp := ToTodoResponse(&item.Todo)
	resp.Color = item.Color
	return resp
}

// StatsResponse summarizes the full collection.
type StatsResponse struct {
	Total           int            `json:"total"`
	Active          int            `json:"active"`
	Completed       int            `json:"completed"`
	PercentComplete int            `json:"percent_complete"`
	ByCategory      map[string]int `json:"by_category"`
}

// ToStatsResponse converts todo.Stats.
func ToStatsResponse(s todo.Stats) StatsResponse {
	return StatsResponse{
		Total:           s.Total,
		Active:          s.Active,
		Completed:       s.Completed,
		PercentComplete: s.PercentComplete,
		ByCategory:      s.ByCategory,
	}
}

// CategoryResponse represents a single category in HTTP responses.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryListResponse lists the categories and their request state.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Count      int                `json:"count"`
	Lifecycle  LifecycleResponse  `json:"lifecycle"`
}

// ToCategoryListResponse converts the category part of a snapshot.
func ToCategoryListResponse(categories []category.Category, status state.Lifecycle) CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = CategoryResponse{ID: c.ID, Name: c.Name, Color: c.Color}
	}
	return CategoryListResponse{
		Categories: items,
		Count:      len(items),
		Lifecycle:  ToLifecycleResponse(status),
	}
}
