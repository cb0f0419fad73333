package model

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ListQuery carries the query string of the paginated list endpoints.
type ListQuery struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search" binding:"max=100"`
	Filter  string `form:"filter" binding:"max=32"`
	Status  string `form:"status" binding:"max=32"`
}

// Normalize applies defaults and clamps per_page.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
}

// Bounds returns the [start, end) window of the page within total items.
func (q *ListQuery) Bounds(total int) (int, int) {
	start := Offset(q.Page, q.PerPage)
	if start > total {
		start = total
	}
	end := start + q.PerPage
	if end > total {
		end = total
	}
	return start, end
}

// Offset returns the index of the first item of page. It saturates at
// math.MaxInt instead of wrapping, so any huge page reads as past the end.
func Offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// Page is one page of formatted list items.
// Degraded is set when the items came from the demo data set after a live read failed.
type Page[T any] struct {
	Items    []T
	Page     int
	PerPage  int
	Total    int
	Degraded bool
}
