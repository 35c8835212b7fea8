package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/domain/category"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/state"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func testSnapshot() state.Snapshot {
	return state.Snapshot{
		Todos: []todo.Todo{
			{ID: "1", Text: "buy milk", Category: "home"},
			{ID: "2", Text: "file taxes", Category: "work", Completed: true},
			{ID: "3", Text: "call mom"},
		},
		TodoStatus: state.Succeeded(),
		Categories: []category.Category{
			{ID: "1", Name: "home", Color: "#00ff00"},
		},
		CategoryStatus:     state.Failed("timeout"),
		Filter:             todo.Filter{Status: todo.StatusActive},
		CurrentPage:        1,
		ItemsPerPage:       5,
		TotalFilteredItems: 2,
		TotalPages:         1,
		LastUpdated:        testTime,
	}
}

func TestToViewResponse(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	got := dto.ToViewResponse(&snap)

	want := dto.ViewResponse{
		Items: []dto.TodoResponse{
			{ID: "1", Text: "buy milk", Category: "home", Color: "#00ff00"},
			{ID: "3", Text: "call mom"},
		},
		FilteredCount: 2,
		TotalCount:    3,
		CurrentPage:   1,
		ItemsPerPage:  5,
		TotalPages:    1,
		Filter:        dto.FilterResponse{Status: "active"},
		Lifecycle:     dto.LifecycleResponse{Status: "succeeded"},
		LastUpdated:   "2026-02-12T15:04:05Z",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToViewResponse() mismatch (-want +got):\n%s", diff)
	}
}

func TestToLifecycleResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   state.Lifecycle
		want dto.LifecycleResponse
	}{
		{name: "idle", in: state.Idle(), want: dto.LifecycleResponse{Status: "idle"}},
		{name: "loading", in: state.Loading(), want: dto.LifecycleResponse{Status: "loading"}},
		{name: "failed", in: state.Failed("boom"), want: dto.LifecycleResponse{Status: "failed", Error: "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := dto.ToLifecycleResponse(tt.in); got != tt.want {
				t.Errorf("ToLifecycleResponse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToCategoryListResponse(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	got := dto.ToCategoryListResponse(snap.Categories, snap.CategoryStatus)

	if got.Count != 1 || got.Categories[0].Color != "#00ff00" {
		t.Errorf("ToCategoryListResponse() = %+v", got)
	}
	if got.Lifecycle.Error != "timeout" {
		t.Errorf("Lifecycle.Error = %q, want timeout", got.Lifecycle.Error)
	}
}

func TestViewResponse_JSONSerialization(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	data, err := json.Marshal(dto.ToViewResponse(&snap))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	for _, key := range []string{
		"items", "filtered_count", "total_count", "current_page", "items_per_page",
		"total_pages", "has_prev", "has_next", "filter", "lifecycle", "last_updated",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON missing key %q", key)
		}
	}

	items, ok := m["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("items = %v, want 2 entries", m["items"])
	}
	second, ok := items[1].(map[string]any)
	if !ok {
		t.Fatalf("items[1] = %T, want object", items[1])
	}
	if _, hasColor := second["color"]; hasColor {
		t.Error("uncategorized item should omit color")
	}
}

func TestToStatsResponse(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	got := dto.ToStatsResponse(snap.Stats())

	want := dto.StatsResponse{
		Total:           3,
		Active:          2,
		Completed:       1,
		PercentComplete: 33,
		ByCategory:      map[string]int{"home": 1, "work": 1, todo.UncategorizedLabel: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToStatsResponse() mismatch (-want +got):\n%s", diff)
	}
}
