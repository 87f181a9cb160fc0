package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"valid values pass through", 3, 50, 3, 50},
		{"oversized limit clamps to max", 1, 500, 1, MaxPageSize},
		{"zero limit falls back to default", 1, 0, 1, DefaultPageSize},
		{"negative limit falls back to default", 1, -5, 1, DefaultPageSize},
		{"zero page floors to one", 0, 20, 1, 20},
		{"negative page floors to one", -3, 20, 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ClampPagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(42, 1, 20)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 20, info.PageSize)
	assert.Equal(t, int64(42), info.TotalItems)
	assert.Equal(t, 3, info.TotalPages)

	// Empty result set still reports one page
	info = NewPaginationInfo(0, 1, 20)
	assert.Equal(t, 1, info.TotalPages)

	// Page beyond the end is pulled back to the last page
	info = NewPaginationInfo(10, 5, 20)
	assert.Equal(t, 1, info.CurrentPage)
}
