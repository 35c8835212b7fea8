package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todosync/internal/domain/todo"
	"github.com/jsamuelsen11/todosync/internal/ports"
)

// ViewHandler serves the resolved view and the local intents that change
// it. None of its routes reach the remote resource.
type ViewHandler struct {
	view ports.ViewService
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(view ports.ViewService) *ViewHandler {
	return &ViewHandler{view: view}
}

// GetView handles GET /api/v1/view.
func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	writeView(w, h.view.Snapshot(r.Context()))
}

// GetStats handles GET /api/v1/stats.
func (h *ViewHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snap := h.view.Snapshot(r.Context())
	writeJSON(w, http.StatusOK, dto.ToStatsResponse(snap.Stats()))
}

// GetCategories handles GET /api/v1/categories.
func (h *ViewHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	snap := h.view.Snapshot(r.Context())
	writeJSON(w, http.StatusOK, dto.ToCategoryListResponse(snap.Categories, snap.CategoryStatus))
}

// SetFilters handles PUT /api/v1/filters.
func (h *ViewHandler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	if req.Status != nil {
		if err := h.view.SetStatusFilter(ctx, todo.StatusFilter(*req.Status)); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}
	if req.Category != nil {
		h.view.SetCategoryFilter(ctx, *req.Category)
	}

	writeView(w, h.view.Snapshot(ctx))
}

// SetPagination handles PUT /api/v1/pagination.
func (h *ViewHandler) SetPagination(w http.ResponseWriter, r *http.Request) {
	var req dto.PaginationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	if req.ItemsPerPage != nil {
		if err := h.view.SetItemsPerPage(ctx, *req.ItemsPerPage); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}
	if req.Page != nil {
		h.view.SetPage(ctx, *req.Page)
	}

	writeView(w, h.view.Snapshot(ctx))
}

// Navigate handles POST /api/v1/pagination/{nav}.
func (h *ViewHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	nav := ports.PageNav(chi.URLParam(r, "nav"))

	if err := h.view.Navigate(r.Context(), nav); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeView(w, h.view.Snapshot(r.Context()))
}
