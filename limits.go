package diggpager

import "math"

const (
	MaxPageSize     = 100
	DefaultPageSize = 10
)

// NormalizePageSize returns size clamped to [1, MaxPageSize]. A non-positive size
// means DefaultPageSize.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}

	return min(size, MaxPageSize)
}

// LastAddressablePage returns the highest page number whose offset (page-1)*size
// still fits in an int.
func LastAddressablePage(size int) int {
	if size <= 1 {
		return math.MaxInt
	}

	return math.MaxInt / size
}

// IsAddressablePage reports whether page is a 1-based page number whose offset
// fits in an int for the given page size.
func IsAddressablePage(page, size int) bool {
	return page >= 1 && page <= LastAddressablePage(size)
}

// NormalizePage returns page clamped to [1, LastAddressablePage(size)].
func NormalizePage(page, size int) int {
	return min(max(page, 1), LastAddressablePage(size))
}
