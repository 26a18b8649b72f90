// internal/app/system/paging/paging.go
//
// Package paging parses page/limit query parameters and computes the
// {current, total, count} pagination block for paged admin lists.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when the caller does not pass one.
const DefaultLimit = 10

// MaxLimit caps the page size a caller can request.
const MaxLimit = 100

// Params is a parsed pagination request.
type Params struct {
	Page  int // 1-based
	Limit int
}

// Parse reads "page" and "limit" from the request, falling back to page 1
// and DefaultLimit. Invalid or out-of-range values fall back rather than
// erroring, so a bad page number never fails a list request.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultLimit}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			if n > MaxLimit {
				n = MaxLimit
			}
			p.Limit = n
		}
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// TotalPages returns the page count for a total match count. Zero matches
// yield zero pages.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
