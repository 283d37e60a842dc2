package pagination

import (
	"errors"
	"fmt"
)

// Validation errors returned by ComputeRange.
var (
	ErrInvalidTotal   = errors.New("total pages must be >= 1")
	ErrPageOutOfRange = errors.New("current page out of range")
	ErrNegativeCount  = errors.New("sibling and boundary counts must be >= 0")
)

// MarkerKind discriminates page markers from ellipsis placeholders.
type MarkerKind int

const (
	// MarkerPage is a navigable page number.
	MarkerPage MarkerKind = iota
	// MarkerEllipsis is a non-navigable placeholder for an elided run of pages.
	MarkerEllipsis
)

// Marker is one element of a page-selector sequence: either a 1-based page
// number or an ellipsis. Consumers must check Kind before using Page; an
// ellipsis carries no page value and is never a navigation target.
type Marker struct {
	Kind MarkerKind
	Page int
}

// PageMarker returns a marker for page n.
func PageMarker(n int) Marker {
	return Marker{Kind: MarkerPage, Page: n}
}

// EllipsisMarker returns an ellipsis placeholder marker.
func EllipsisMarker() Marker {
	return Marker{Kind: MarkerEllipsis}
}

// IsEllipsis reports whether the marker is an ellipsis placeholder.
func (m Marker) IsEllipsis() bool {
	return m.Kind == MarkerEllipsis
}

// String renders the marker for plain-text output.
func (m Marker) String() string {
	if m.Kind == MarkerEllipsis {
		return "…"
	}
	return fmt.Sprintf("%d", m.Page)
}

// ComputeRange computes the marker sequence for a page selector.
//
// current is the 1-based current page, total the total page count, siblings
// the number of pages shown on each side of current, and boundaries the
// number of pages pinned at each extreme.
//
// When total fits the display budget (2*siblings + 2*boundaries + 3) the
// full contiguous range [1..total] is returned with no ellipsis. Otherwise
// boundary pages, the sibling window around current, and at most one
// ellipsis per gap are emitted; a gap of exactly one page collapses to the
// page itself rather than an ellipsis.
//
// ComputeRange never clamps: out-of-range or negative input is rejected
// with ErrPageOutOfRange or ErrNegativeCount. Clamping stale navigation
// requests is Controller's job.
func ComputeRange(current, total, siblings, boundaries int) ([]Marker, error) {
	if total < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTotal, total)
	}
	if siblings < 0 || boundaries < 0 {
		return nil, fmt.Errorf("%w: siblings=%d boundaries=%d", ErrNegativeCount, siblings, boundaries)
	}
	if current < 1 || current > total {
		return nil, fmt.Errorf("%w: page %d not in [1, %d]", ErrPageOutOfRange, current, total)
	}

	budget := 2*siblings + 2*boundaries + 3
	if total <= budget {
		return pageRun(1, total, nil), nil
	}

	markers := make([]Marker, 0, budget)
	markers = pageRun(1, boundaries, markers)

	// Sibling window, clamped to the space between the boundary runs.
	left := max(current-siblings, boundaries+1)
	right := min(current+siblings, total-boundaries)

	switch {
	case left > boundaries+2:
		markers = append(markers, EllipsisMarker())
	case left == boundaries+2:
		// One-page gap collapses to the page itself.
		markers = appendPage(markers, boundaries+1)
	}

	for p := left; p <= right; p++ {
		markers = appendPage(markers, p)
	}

	switch {
	case right < total-boundaries-1:
		markers = append(markers, EllipsisMarker())
	case right == total-boundaries-1:
		markers = appendPage(markers, total-boundaries)
	}

	markers = pageRun(total-boundaries+1, total, markers)
	return markers, nil
}

// pageRun appends page markers for [from..to] to dst, skipping duplicates
// of the last numeric marker.
func pageRun(from, to int, dst []Marker) []Marker {
	if dst == nil {
		dst = make([]Marker, 0, to-from+1)
	}
	for p := from; p <= to; p++ {
		dst = appendPage(dst, p)
	}
	return dst
}

// appendPage appends a page marker unless it would repeat or precede the
// last numeric marker already emitted. Keeps the sequence strictly
// increasing regardless of parameter combination.
func appendPage(dst []Marker, page int) []Marker {
	for i := len(dst) - 1; i >= 0; i-- {
		if dst[i].Kind == MarkerPage {
			if page <= dst[i].Page {
				return dst
			}
			break
		}
	}
	return append(dst, PageMarker(page))
}
