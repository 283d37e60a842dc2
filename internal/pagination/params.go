package pagination

import (
	"errors"
	"fmt"
)

// Pagination defaults and validation limits.
const (
	DefaultPage       = 1
	DefaultPageSize   = 20
	MinPageSize       = 1
	MaxPageSize       = 100
	DefaultSiblings   = 1
	DefaultBoundaries = 1
)

// Common validation errors.
var (
	ErrInvalidPage = errors.New("page must be >= 1")
)

// Params holds request-level pagination inputs, typically bound to CLI
// flags. Zero values mean "not set" and are filled in by Normalize.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of items per page.
	PageSize int

	// Siblings is the number of page markers on each side of the current
	// page in the rendered selector.
	Siblings int

	// Boundaries is the number of page markers pinned at each extreme of
	// the rendered selector.
	Boundaries int

	// Sort is a sort expression in "field" or "field:order" form. Empty
	// means no sorting.
	Sort string
}

// NewParams returns Params with all defaults applied.
func NewParams() Params {
	return Params{
		Page:       DefaultPage,
		PageSize:   DefaultPageSize,
		Siblings:   DefaultSiblings,
		Boundaries: DefaultBoundaries,
	}
}

// Validate checks the parameters for values that can never be right,
// regardless of the data set. It does not enforce the MaxPageSize cap;
// that is Normalize's job, since an over-limit page size from a user is
// capped rather than rejected.
func (p Params) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Siblings < 0 || p.Boundaries < 0 {
		return fmt.Errorf("%w: siblings=%d boundaries=%d", ErrNegativeCount, p.Siblings, p.Boundaries)
	}
	if p.Sort != "" {
		if _, _, err := ParseSort(p.Sort); err != nil {
			return err
		}
	}
	return nil
}

// Normalize returns a copy with unset values defaulted and PageSize capped
// at MaxPageSize.
func (p Params) Normalize() Params {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the 0-based item offset of the page, floored at 0.
func (p Params) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// ApplyToSlice returns the window of items covered by the page described
// by params. A page beyond the end of the data yields the last non-empty
// page rather than an empty slice, matching the controller's clamping
// policy for stale requests.
func ApplyToSlice[T any](items []T, params Params) []T {
	if len(items) == 0 {
		return items
	}
	params = params.Normalize()

	offset := params.Offset()
	if offset >= len(items) {
		// Clamp to the start of the last page.
		offset = ((len(items) - 1) / params.PageSize) * params.PageSize
	}
	end := min(offset+params.PageSize, len(items))
	return items[offset:end]
}
