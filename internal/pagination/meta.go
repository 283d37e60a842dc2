package pagination

// Meta contains metadata about a paginated result set. It is embedded in
// CLI output envelopes alongside the page items.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta builds pagination metadata from the current page, page size, and
// total item count.
//
// TotalPages is ceiling(totalItems / pageSize), floored at 1 so that an
// empty result set is still a valid single-page state. pageSize must be
// positive; callers are expected to have validated it (Params.Validate,
// NewController).
func NewMeta(page, pageSize, totalItems int) Meta {
	totalPages := TotalPages(totalItems, pageSize)
	return Meta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

// TotalPages computes ceiling(totalItems / pageSize), floored at 1.
// A zero or negative pageSize yields 1 rather than dividing by zero.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}
