package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pages is a test helper that builds a marker sequence from ints, with -1
// standing in for an ellipsis.
func pages(values ...int) []Marker {
	markers := make([]Marker, 0, len(values))
	for _, v := range values {
		if v == -1 {
			markers = append(markers, EllipsisMarker())
		} else {
			markers = append(markers, PageMarker(v))
		}
	}
	return markers
}

func TestComputeRange(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		siblings   int
		boundaries int
		want       []Marker
	}{
		{
			name:    "all pages fit budget",
			current: 1, total: 5, siblings: 1, boundaries: 1,
			want: pages(1, 2, 3, 4, 5),
		},
		{
			name:    "exactly at budget",
			current: 4, total: 7, siblings: 1, boundaries: 1,
			want: pages(1, 2, 3, 4, 5, 6, 7),
		},
		{
			name:    "first page",
			current: 1, total: 10, siblings: 1, boundaries: 1,
			want: pages(1, 2, -1, 10),
		},
		{
			name:    "middle page",
			current: 5, total: 10, siblings: 1, boundaries: 1,
			want: pages(1, -1, 4, 5, 6, -1, 10),
		},
		{
			name:    "middle page wide siblings collapses left gap",
			current: 5, total: 10, siblings: 2, boundaries: 1,
			want: pages(1, 2, 3, 4, 5, 6, 7, -1, 10),
		},
		{
			name:    "first page two boundaries",
			current: 1, total: 10, siblings: 1, boundaries: 2,
			want: pages(1, 2, -1, 9, 10),
		},
		{
			name:    "last page",
			current: 10, total: 10, siblings: 1, boundaries: 1,
			want: pages(1, -1, 9, 10),
		},
		{
			name:    "one page gap on the left collapses to the page",
			current: 4, total: 10, siblings: 1, boundaries: 1,
			want: pages(1, 2, 3, 4, 5, -1, 10),
		},
		{
			name:    "one page gap on the right collapses to the page",
			current: 7, total: 10, siblings: 1, boundaries: 1,
			want: pages(1, -1, 6, 7, 8, 9, 10),
		},
		{
			name:    "deep middle of a large set",
			current: 50, total: 100, siblings: 2, boundaries: 2,
			want: pages(1, 2, -1, 48, 49, 50, 51, 52, -1, 99, 100),
		},
		{
			name:    "single page",
			current: 1, total: 1, siblings: 1, boundaries: 1,
			want: pages(1),
		},
		{
			name:    "zero siblings and boundaries small set",
			current: 2, total: 3, siblings: 0, boundaries: 0,
			want: pages(1, 2, 3),
		},
		{
			name:    "zero boundaries leads with ellipsis",
			current: 5, total: 10, siblings: 1, boundaries: 0,
			want: pages(-1, 4, 5, 6, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRange(tt.current, tt.total, tt.siblings, tt.boundaries)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeRange_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		siblings   int
		boundaries int
		wantErr    error
	}{
		{name: "zero total", current: 1, total: 0, siblings: 1, boundaries: 1, wantErr: ErrInvalidTotal},
		{name: "negative total", current: 1, total: -3, siblings: 1, boundaries: 1, wantErr: ErrInvalidTotal},
		{name: "page zero", current: 0, total: 5, siblings: 1, boundaries: 1, wantErr: ErrPageOutOfRange},
		{name: "page past end", current: 6, total: 5, siblings: 1, boundaries: 1, wantErr: ErrPageOutOfRange},
		{name: "negative siblings", current: 1, total: 5, siblings: -1, boundaries: 1, wantErr: ErrNegativeCount},
		{name: "negative boundaries", current: 1, total: 5, siblings: 1, boundaries: -1, wantErr: ErrNegativeCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRange(tt.current, tt.total, tt.siblings, tt.boundaries)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

// TestComputeRange_Invariants sweeps a broad parameter grid and checks the
// structural guarantees that must hold for every combination.
func TestComputeRange_Invariants(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			for siblings := 0; siblings <= 4; siblings++ {
				for boundaries := 0; boundaries <= 4; boundaries++ {
					name := fmt.Sprintf("t%d_c%d_s%d_b%d", total, current, siblings, boundaries)
					markers, err := ComputeRange(current, total, siblings, boundaries)
					require.NoError(t, err, name)
					require.NotEmpty(t, markers, name)

					seen := make(map[int]bool)
					lastPage := 0
					ellipses := 0
					containsCurrent := false
					for i, m := range markers {
						if m.IsEllipsis() {
							ellipses++
							if i > 0 {
								assert.False(t, markers[i-1].IsEllipsis(),
									"%s: consecutive ellipses", name)
							}
							continue
						}
						assert.False(t, seen[m.Page], "%s: duplicate page %d", name, m.Page)
						seen[m.Page] = true
						assert.Greater(t, m.Page, lastPage, "%s: not increasing", name)
						// Adjacent numeric markers must be contiguous.
						if i > 0 && !markers[i-1].IsEllipsis() {
							assert.Equal(t, lastPage+1, m.Page, "%s: silent gap", name)
						}
						lastPage = m.Page
						if m.Page == current {
							containsCurrent = true
						}
					}

					assert.True(t, containsCurrent, "%s: current page missing", name)
					assert.LessOrEqual(t, ellipses, 2, name)
					if boundaries >= 1 {
						assert.Equal(t, PageMarker(1), markers[0], "%s: first marker", name)
						assert.Equal(t, PageMarker(total), markers[len(markers)-1], "%s: last marker", name)
					}
				}
			}
		}
	}
}

func TestMarker_String(t *testing.T) {
	assert.Equal(t, "7", PageMarker(7).String())
	assert.Equal(t, "…", EllipsisMarker().String())
	assert.True(t, EllipsisMarker().IsEllipsis())
	assert.False(t, PageMarker(1).IsEllipsis())
}
