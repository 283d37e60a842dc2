package pagination

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortPartsMax is the maximum number of parts in a sort expression (field:order).
const sortPartsMax = 2

// Sort expression errors.
var (
	ErrEmptySortField   = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortExpr  = errors.New("invalid sort format: use 'field' or 'field:order'")
)

// ParseSort parses a sort expression in "field" or "field:order" form.
// Examples: "name", "amount:desc", "category:asc".
// A bare field defaults to ascending order.
func ParseSort(expr string) (string, string, error) {
	if strings.TrimSpace(expr) == "" {
		return "", "", ErrEmptySortField
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortExpr, expr)
	}

	field := strings.TrimSpace(parts[0])
	if field == "" {
		return "", "", ErrEmptySortField
	}

	order := SortOrderAsc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// LessFunc compares two items under a named sort field.
type LessFunc[T any] func(a, b T) bool

// Sorter sorts slices by registered field names. The zero value is not
// usable; construct with NewSorter.
type Sorter[T any] struct {
	fields map[string]LessFunc[T]
}

// NewSorter creates a Sorter with the given field comparators.
func NewSorter[T any](fields map[string]LessFunc[T]) *Sorter[T] {
	return &Sorter[T]{fields: fields}
}

// IsValidField checks if the field is registered for sorting.
func (s *Sorter[T]) IsValidField(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// ValidFields returns the registered field names in a consistent order.
func (s *Sorter[T]) ValidFields() []string {
	fields := make([]string, 0, len(s.fields))
	for field := range s.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort sorts items by the given field and order. It returns a new sorted
// slice and does not modify the original. An unregistered field returns
// the input unchanged.
func (s *Sorter[T]) Sort(items []T, field, order string) []T {
	less, ok := s.fields[field]
	if !ok {
		return items
	}

	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		// Swap the indices for descending order so stability is preserved.
		if order == SortOrderDesc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}
