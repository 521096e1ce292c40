// Package search implements the client-side combo search: substring
// matching that ignores case and Vietnamese diacritics, plus the
// active/inactive/all list filter.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"cinema-booking-cli/model"
)

var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics, so that "Rạp" folds to "rap".
// đ/Đ are not combining-mark compositions and need their own mapping.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransform, s)
	if err != nil {
		folded = s
	}
	folded = strings.ReplaceAll(folded, "đ", "d")
	folded = strings.ReplaceAll(folded, "Đ", "D")
	return strings.ToLower(folded)
}

// Contains reports whether text contains query, ignoring case and
// diacritics. An empty query matches nothing.
func Contains(text string, query string) bool {
	if text == "" || query == "" {
		return false
	}
	return strings.Contains(Fold(text), Fold(query))
}

// ActiveFilter is the tri-state combo list filter.
type ActiveFilter int

const (
	FilterAll ActiveFilter = iota
	FilterActive
	FilterInactive
)

func (f ActiveFilter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterInactive:
		return "inactive"
	default:
		return "all"
	}
}

// Next cycles through all → active → inactive.
func (f ActiveFilter) Next() ActiveFilter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterInactive
	default:
		return FilterAll
	}
}

func (f ActiveFilter) matches(combo model.Combo) bool {
	switch f {
	case FilterActive:
		return combo.IsActive
	case FilterInactive:
		return !combo.IsActive
	default:
		return true
	}
}

// FilterCombos applies the search term over name and description and the
// active filter to an already-fetched combo list. An empty term matches
// every combo.
func FilterCombos(combos []model.Combo, term string, filter ActiveFilter) []model.Combo {
	result := make([]model.Combo, 0, len(combos))
	for _, combo := range combos {
		if !filter.matches(combo) {
			continue
		}
		if term != "" && !Contains(combo.Name, term) && !Contains(combo.Description, term) {
			continue
		}
		result = append(result, combo)
	}
	return result
}
