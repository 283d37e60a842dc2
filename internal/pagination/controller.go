package pagination

import (
	"errors"
	"fmt"
)

// Configuration errors returned by NewController and its setters.
var (
	ErrInvalidPageSize   = errors.New("page size must be > 0")
	ErrInvalidTotalItems = errors.New("total items must be >= 0")
)

// Config holds the construction parameters for a Controller.
type Config struct {
	// TotalItems is the number of items across all pages. Must be >= 0.
	TotalItems int

	// PageSize is the number of items per page. Must be > 0.
	PageSize int

	// Siblings is the number of page markers shown on each side of the
	// current page.
	Siblings int

	// Boundaries is the number of page markers pinned at each extreme.
	Boundaries int
}

// NavResult is the outcome of a navigation request. Changed distinguishes a
// real page change from a no-op so callers can skip redundant downstream
// work such as refetching data.
type NavResult struct {
	Page    int
	Changed bool
}

// Controller owns the current-page state for one paginated view. It derives
// the total page count from the item count and page size, clamps navigation
// requests into range, and recomputes the marker sequence on demand.
//
// Controller is the validation and clamping boundary: it accepts
// out-of-range navigation (a stale "next" click after the data shrank) and
// clamps silently, while ComputeRange underneath rejects bad input outright.
//
// A Controller is not safe for concurrent use; it is meant to live on a
// single UI event loop.
type Controller struct {
	totalItems int
	pageSize   int
	siblings   int
	boundaries int
	current    int

	listeners []func(page int)
}

// NewController creates a Controller positioned on page 1.
// It fails fast on invalid configuration rather than deferring the error
// to render time.
func NewController(cfg Config) (*Controller, error) {
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, cfg.PageSize)
	}
	if cfg.TotalItems < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTotalItems, cfg.TotalItems)
	}
	if cfg.Siblings < 0 || cfg.Boundaries < 0 {
		return nil, fmt.Errorf("%w: siblings=%d boundaries=%d", ErrNegativeCount, cfg.Siblings, cfg.Boundaries)
	}
	return &Controller{
		totalItems: cfg.TotalItems,
		pageSize:   cfg.PageSize,
		siblings:   cfg.Siblings,
		boundaries: cfg.Boundaries,
		current:    1,
	}, nil
}

// CurrentPage returns the 1-based current page.
func (c *Controller) CurrentPage() int {
	return c.current
}

// TotalPages returns the derived page count, always >= 1.
func (c *Controller) TotalPages() int {
	return TotalPages(c.totalItems, c.pageSize)
}

// TotalItems returns the configured item count.
func (c *Controller) TotalItems() int {
	return c.totalItems
}

// PageSize returns the configured page size.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// GoTo navigates to page, clamping it into [1, TotalPages]. Requests that
// resolve to the current page are no-ops: Changed is false and no change
// listener fires.
func (c *Controller) GoTo(page int) NavResult {
	target := min(max(page, 1), c.TotalPages())
	if target == c.current {
		return NavResult{Page: c.current, Changed: false}
	}
	c.current = target
	c.notify(target)
	return NavResult{Page: target, Changed: true}
}

// Next advances one page. At the last page it is a no-op, not an error.
func (c *Controller) Next() NavResult {
	return c.GoTo(c.current + 1)
}

// Previous goes back one page. At page 1 it is a no-op, not an error.
func (c *Controller) Previous() NavResult {
	return c.GoTo(c.current - 1)
}

// SetTotalItems updates the item count and clamps the current page down if
// it now exceeds the new page count. The clamp fires change listeners like
// any other page change.
func (c *Controller) SetTotalItems(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotalItems, n)
	}
	c.totalItems = n
	c.reclamp()
	return nil
}

// SetPageSize updates the page size and clamps the current page down if it
// now exceeds the new page count.
func (c *Controller) SetPageSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, n)
	}
	c.pageSize = n
	c.reclamp()
	return nil
}

// Markers returns the marker sequence for the current state. It is
// recomputed on every call, so the result is always consistent with the
// state at the time of the call.
func (c *Controller) Markers() []Marker {
	markers, err := ComputeRange(c.current, c.TotalPages(), c.siblings, c.boundaries)
	if err != nil {
		// Controller state is clamped by construction; a failure here is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("pagination: controller state invalid: %v", err))
	}
	return markers
}

// Meta returns a metadata snapshot of the current state.
func (c *Controller) Meta() Meta {
	return NewMeta(c.current, c.pageSize, c.totalItems)
}

// PageBounds returns the half-open item index range [from, to) covered by
// the current page, for slicing a backing data set.
func (c *Controller) PageBounds() (int, int) {
	from := (c.current - 1) * c.pageSize
	to := min(from+c.pageSize, c.totalItems)
	if from > c.totalItems {
		from = c.totalItems
	}
	return from, to
}

// OnChange registers fn to be called with the new page whenever navigation
// actually changes the current page. No-op navigation never fires.
func (c *Controller) OnChange(fn func(page int)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) reclamp() {
	if total := c.TotalPages(); c.current > total {
		c.current = total
		c.notify(total)
	}
}

func (c *Controller) notify(page int) {
	for _, fn := range c.listeners {
		fn(page)
	}
}
