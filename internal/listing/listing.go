// Package listing provides the filter and pagination helpers shared by the
// purchase and order list endpoints.
package listing

import "strings"

// FilterByName returns the items whose display name contains query,
// case-insensitively. An empty query matches everything. The input slice is
// never modified.
func FilterByName[T any](items []T, query string, name func(T) string) []T {
	q := strings.ToLower(query)
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(name(it)), q) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}

// Paginate returns the 1-indexed page of the given size. Pages outside
// [1, ceil(len/size)] yield an empty slice rather than an error; callers
// clamp through the rendered page-number list.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page <= 0 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// PageNumbers is the list 1..ceil(total/pageSize) rendered as pagination
// buttons. An empty collection has no pages.
func PageNumbers(total, pageSize int) []int {
	if pageSize <= 0 || total <= 0 {
		return []int{}
	}
	n := (total + pageSize - 1) / pageSize
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}
