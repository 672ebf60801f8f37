// Package listing filters already-fetched lists by category and free-text search.
package listing

import "strings"

const AllCategories = "all"

// Filter keeps items whose category equals category (case-sensitive; "all" or empty
// keeps every item) and where any of the text fields contains search, ignoring case.
// Both conditions must hold. Input order is preserved.
func Filter[T any](items []T, category, search string, categoryOf func(T) string, textOf ...func(T) string) []T {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]T, 0, len(items))
	for _, it := range items {
		if !MatchCategory(categoryOf(it), category) {
			continue
		}
		if needle != "" && !matchText(it, needle, textOf) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func MatchCategory(value, category string) bool {
	return category == "" || category == AllCategories || value == category
}

func matchText[T any](it T, needle string, textOf []func(T) string) bool {
	for _, f := range textOf {
		if strings.Contains(strings.ToLower(f(it)), needle) {
			return true
		}
	}
	return false
}
