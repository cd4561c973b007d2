// Package views derives everything the dashboard renders from the raw
// entity collections: filtered subsets, aggregate counts, stock and expiry
// classifications, and report summaries. Every function here is pure;
// derived values are recomputed from the current collection on each call
// and are never stored back on a record, so they cannot go stale.
package views

import "strings"

// FilterAll is the sentinel filter value matching every record regardless
// of its category or status.
const FilterAll = "all"

// matchesTerm reports whether the case-folded search term is a substring
// of any of the given fields. An empty term matches everything.
func matchesTerm(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
