package util

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators keep internal buffers, so each call builds its own.
func newNaturalCollator() *collate.Collator {
	return collate.New(language.BritishEnglish, collate.Loose, collate.Numeric)
}

// NaturalLess orders names ignoring case and accents, with digit runs compared
// by value ("Ward 2" before "Ward 10").
func NaturalLess(a, b string) bool {
	return newNaturalCollator().CompareString(a, b) < 0
}

// SortNatural sorts items in place by the natural order of key(item). Ties keep input order.
func SortNatural[T any](items []T, key func(T) string) {
	c := newNaturalCollator()
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}
