package state

import (
	"fmt"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/view"
)

// DefaultItemsPerPage is the page size used when none is configured.
const DefaultItemsPerPage = 5

// PaginationState holds the current page, the page size and the last known
// number of todos passing the filters.
//
// CurrentPage never exceeds ceil(TotalFilteredItems/ItemsPerPage) while that
// bound is positive. When the bound is zero the page keeps its last value and
// the resolved view is simply empty.
type PaginationState struct {
	currentPage        int
	itemsPerPage       int
	totalFilteredItems int
}

// NewPaginationState returns page 1 with the given size, falling back to
// DefaultItemsPerPage for non-positive sizes.
func NewPaginationState(itemsPerPage int) *PaginationState {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPage
	}
	return &PaginationState{currentPage: 1, itemsPerPage: itemsPerPage}
}

// SetCurrentPage sets the page directly. Callers clamp to [1, TotalPages()];
// values below 1 are raised to 1.
func (p *PaginationState) SetCurrentPage(n int) {
	p.currentPage = max(1, n)
}

// SetItemsPerPage changes the page size and returns to the first page.
func (p *PaginationState) SetItemsPerPage(n int) error {
	if n <= 0 {
		return &domain.ValidationError{Fields: map[string]string{
			"items_per_page": fmt.Sprintf("must be positive, got %d", n),
		}}
	}
	p.itemsPerPage = n
	p.currentPage = 1
	return nil
}

// SetTotalFilteredItems records the filtered count after a recomputation and
// clamps the current page down when it has become invalid. It never moves
// the page forward.
func (p *PaginationState) SetTotalFilteredItems(n int) {
	n = max(0, n)
	p.totalFilteredItems = n

	bound := (n + p.itemsPerPage - 1) / p.itemsPerPage
	if bound > 0 && p.currentPage > bound {
		p.currentPage = bound
	}
}

// TotalPages returns max(1, ceil(TotalFilteredItems/ItemsPerPage)).
func (p *PaginationState) TotalPages() int {
	return view.TotalPages(p.totalFilteredItems, p.itemsPerPage)
}

// First moves to page 1.
func (p *PaginationState) First() { p.currentPage = 1 }

// Prev moves back one page, stopping at page 1.
func (p *PaginationState) Prev() {
	if p.currentPage > 1 {
		p.currentPage--
	}
}

// Next moves forward one page, stopping at the last page.
func (p *PaginationState) Next() {
	if p.currentPage < p.TotalPages() {
		p.currentPage++
	}
}

// Last moves to the last page.
func (p *PaginationState) Last() { p.currentPage = p.TotalPages() }

// CurrentPage returns the current page number.
func (p *PaginationState) CurrentPage() int { return p.currentPage }

// ItemsPerPage returns the page size.
func (p *PaginationState) ItemsPerPage() int { return p.itemsPerPage }

// TotalFilteredItems returns the last recorded filtered count.
func (p *PaginationState) TotalFilteredItems() int { return p.totalFilteredItems }
