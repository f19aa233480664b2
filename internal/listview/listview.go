package listview

import (
	"sort"
	"strings"
)

// SortOrder is the tri-state column sort used by every table view:
// ascending, then descending, then back to unsorted (insertion order).
type SortOrder string

const (
	OrderAsc      SortOrder = "asc"
	OrderDesc     SortOrder = "desc"
	OrderUnsorted SortOrder = ""
)

// NextOrder advances the tri-state cycle for a column header click.
func NextOrder(current SortOrder) SortOrder {
	switch current {
	case OrderAsc:
		return OrderDesc
	case OrderDesc:
		return OrderUnsorted
	default:
		return OrderAsc
	}
}

// ParseOrder normalizes a query-string sort order. Anything unrecognized is
// treated as unsorted.
func ParseOrder(value string) SortOrder {
	switch value {
	case "asc":
		return OrderAsc
	case "desc":
		return OrderDesc
	default:
		return OrderUnsorted
	}
}

// SortBy stable-sorts items by the given less function, reversed for
// descending order. Unsorted leaves insertion order untouched.
func SortBy[T any](items []T, order SortOrder, less func(a, b T) bool) {
	switch order {
	case OrderAsc:
		sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	case OrderDesc:
		sort.SliceStable(items, func(i, j int) bool { return less(items[j], items[i]) })
	}
}

// Matches reports whether any of the row's visible field values contains the
// search term, case-insensitively. An empty search matches everything.
func Matches(values []string, search string) bool {
	if search == "" {
		return true
	}

	needle := strings.ToLower(search)
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

// Filter returns the items whose visible values match the search term.
func Filter[T any](items []T, search string, values func(T) []string) []T {
	if search == "" {
		return items
	}

	var out []T
	for _, item := range items {
		if Matches(values(item), search) {
			out = append(out, item)
		}
	}
	return out
}
