package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 20)
	require.Equal(t, uint64(0), offset)
	require.Equal(t, 20, limit)

	offset, limit = CalculateOffsetLimit(3, 10)
	require.Equal(t, uint64(20), offset)
	require.Equal(t, 10, limit)

	// Out-of-range values fall back to defaults
	offset, limit = CalculateOffsetLimit(0, 0)
	require.Equal(t, uint64(0), offset)
	require.Equal(t, DefaultPageSize, limit)

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	require.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(42, 1, 20)
	require.Equal(t, 1, info.CurrentPage)
	require.Equal(t, 20, info.PageSize)
	require.Equal(t, int64(42), info.TotalItems)
	require.Equal(t, 3, info.TotalPages)

	// An empty result set still reports one page
	info = NewPaginationInfo(0, 1, 20)
	require.Equal(t, 1, info.TotalPages)

	// A page beyond the end is clamped
	info = NewPaginationInfo(42, 9, 20)
	require.Equal(t, 3, info.CurrentPage)
}
