package domain

import "math"

// PaginationParams carries page/limit values from the HTTP layer down to the
// in-memory eatery list. Page is 1-indexed. Limit is capped at 100 by
// NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to defaults (page=1, limit=20).
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, 100)
	}
	return p
}

// Offset returns the zero-based position of the first item on the page.
// It saturates at math.MaxInt instead of overflowing.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Bounds clamps the page to a list of n items and returns the half-open
// range [start, end) to slice. A page past the end yields an empty range.
func (p PaginationParams) Bounds(n int) (start, end int) {
	if p.Limit < 1 {
		return n, n
	}
	if p.Page-1 > n/p.Limit {
		return n, n
	}
	start = min(p.Offset(), n)
	end = min(start+p.Limit, n)
	return start, end
}
