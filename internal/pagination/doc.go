// Package pagination provides page-range computation, pagination state
// management, and request-level pagination parameters.
//
// This package contains the shared pagination logic used across pagekit,
// including:
//   - ComputeRange: pure page-marker sequence computation (numbers + ellipses)
//   - Controller: current-page state with clamped navigation and change events
//   - Params: validation and normalization of page/page-size/sort inputs
//   - Meta: response metadata for paginated results
//   - Sorter: generic sorting with field validation
//
// The split of responsibilities is deliberate: ComputeRange rejects invalid
// input outright and never clamps, while Controller is the clamping boundary
// that absorbs stale navigation requests from the UI.
package pagination
