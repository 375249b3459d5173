// Package filter implements the case-insensitive substring search used by
// the list views. No tokenization or ranking; an empty query is identity.
package filter

import "strings"

// Searchable is anything a list view can filter on.
type Searchable interface {
	SearchName() string
	SearchDescription() string
}

// Items returns the elements whose name or description contains the query,
// case-insensitively. An empty query returns the input slice unchanged.
func Items[T Searchable](items []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	matched := make([]T, 0, len(items))
	for _, it := range items {
		name := strings.ToLower(it.SearchName())
		desc := strings.ToLower(it.SearchDescription())
		if strings.Contains(name, q) || strings.Contains(desc, q) {
			matched = append(matched, it)
		}
	}
	return matched
}

// Match reports whether a single name/description pair matches the query.
func Match(name, description, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), q) ||
		strings.Contains(strings.ToLower(description), q)
}
