package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		pageSize    int
		totalItems  int
		wantPages   int
		hasPrevious bool
		hasNext     bool
	}{
		{name: "first of many", page: 1, pageSize: 10, totalItems: 95, wantPages: 10, hasNext: true},
		{name: "middle", page: 5, pageSize: 10, totalItems: 95, wantPages: 10, hasPrevious: true, hasNext: true},
		{name: "last", page: 10, pageSize: 10, totalItems: 95, wantPages: 10, hasPrevious: true},
		{name: "exact fit", page: 1, pageSize: 10, totalItems: 100, wantPages: 10, hasNext: true},
		{name: "single page", page: 1, pageSize: 10, totalItems: 7, wantPages: 1},
		{name: "empty is one page", page: 1, pageSize: 10, totalItems: 0, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.pageSize, tt.totalItems)
			assert.Equal(t, tt.page, meta.CurrentPage)
			assert.Equal(t, tt.pageSize, meta.PageSize)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.totalItems, meta.TotalItems)
			assert.Equal(t, tt.hasPrevious, meta.HasPrevious)
			assert.Equal(t, tt.hasNext, meta.HasNext)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 10, TotalPages(95, 10))
	assert.Equal(t, 1, TotalPages(5, 0), "degenerate page size does not divide by zero")
}
