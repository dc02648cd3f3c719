// Package pagination holds the page arithmetic shared by the book listings.
package pagination

import (
	"net/url"
	"strconv"
)

// Page is a 1-based page of Size records.
type Page struct {
	Page int
	Size int
}

// Parse reads the page and size query parameters. Pagination is disabled
// (ok is false) unless both parse as integers and are at least 1.
func Parse(values url.Values) (Page, bool) {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		return Page{}, false
	}

	size, err := strconv.Atoi(values.Get("size"))
	if err != nil || size < 1 {
		return Page{}, false
	}

	return Page{Page: page, Size: size}, true
}

// Skip is the number of records before the first record of the page.
func (p Page) Skip() int64 {
	return int64(p.Page-1) * int64(p.Size)
}

func (p Page) Limit() int64 {
	return int64(p.Size)
}

// Window returns the [start, end) bounds of the page within total records.
// Both bounds are clamped to total, so a page past the end is empty.
func (p Page) Window(total int) (int, int) {
	start := p.Skip()
	if start > int64(total) {
		start = int64(total)
	}

	end := start + p.Limit()
	if end > int64(total) {
		end = int64(total)
	}

	return int(start), int(end)
}

// Reverse reverses s in place and returns it.
func Reverse[T any](s []T) []T {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}
