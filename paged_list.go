package diggpager

import (
	"github.com/samber/lo"
)

// PagedView is what a pager needs to know about a paged collection. Pages are
// numbered from 1.
type PagedView interface {
	TotalPages() int
	CurrentPage() int
	// PreviousPage returns the previous page number, false on the first page.
	PreviousPage() (int, bool)
	// NextPage returns the next page number, false on the last page.
	NextPage() (int, bool)
}

// PagedList is one page of a larger set of items.
type PagedList[T any] struct {
	// Items elements of the current page.
	Items []T

	totalCount int
	pageSize   int
	pageIndex  int
}

// NewPagedList cuts the page with the 0-based index pageIndex out of source.
// pageIndex is clamped as in NewPagedListWithTotal; a page past the end of source
// has no items.
func NewPagedList[T any](source []T, pageIndex, pageSize int) *PagedList[T] {
	pageIndex = clampPageIndex(pageIndex, pageSize)

	var items []T
	if pageSize > 0 && pageIndex <= len(source)/pageSize {
		items = lo.Subset(source, pageIndex*pageSize, uint(pageSize))
	}

	return NewPagedListWithTotal(items, pageIndex, pageSize, len(source))
}

// NewPagedListWithTotal wraps items that are already paged, for example by a
// database query, together with the size of the whole set. pageIndex is clamped to
// [0, LastAddressablePage(pageSize)-1].
func NewPagedListWithTotal[T any](items []T, pageIndex, pageSize, totalCount int) *PagedList[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return &PagedList[T]{
		Items:      items,
		totalCount: max(totalCount, 0),
		pageSize:   pageSize,
		pageIndex:  clampPageIndex(pageIndex, pageSize),
	}
}

func clampPageIndex(pageIndex, pageSize int) int {
	return min(max(pageIndex, 0), LastAddressablePage(pageSize)-1)
}

// TotalCount returns the number of elements in the whole set.
func (p *PagedList[T]) TotalCount() int {
	if p == nil {
		return 0
	}

	return p.totalCount
}

// PageSize returns the maximum number of elements on a page.
func (p *PagedList[T]) PageSize() int {
	if p == nil {
		return 0
	}

	return p.pageSize
}

// PageIndex returns the 0-based index of the current page.
func (p *PagedList[T]) PageIndex() int {
	if p == nil {
		return 0
	}

	return p.pageIndex
}

// TotalPages - implements PagedView. An empty set still has one page.
func (p *PagedList[T]) TotalPages() int {
	if p == nil || p.pageSize <= 0 || p.totalCount <= p.pageSize {
		return 1
	}

	return (p.totalCount + p.pageSize - 1) / p.pageSize
}

// CurrentPage - implements PagedView.
func (p *PagedList[T]) CurrentPage() int {
	return p.PageIndex() + 1
}

// PreviousPage - implements PagedView.
func (p *PagedList[T]) PreviousPage() (int, bool) {
	if p.TotalPages() < 2 || p.CurrentPage() == 1 {
		return 0, false
	}

	return p.CurrentPage() - 1, true
}

// NextPage - implements PagedView.
func (p *PagedList[T]) NextPage() (int, bool) {
	if p.TotalPages() < 2 || p.CurrentPage() >= p.TotalPages() {
		return 0, false
	}

	return p.CurrentPage() + 1, true
}

func (p *PagedList[T]) HasPreviousPage() bool {
	_, ok := p.PreviousPage()
	return ok
}

func (p *PagedList[T]) HasNextPage() bool {
	_, ok := p.NextPage()
	return ok
}

// IsCurrentPage reports whether page is the current page number.
func (p *PagedList[T]) IsCurrentPage(page int) bool {
	return page == p.CurrentPage()
}

var _ PagedView = (*PagedList[any])(nil)
