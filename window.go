package diggpager

import (
	"slices"

	"github.com/samber/lo"
)

const (
	DefaultInnerWindow = 4
	DefaultOuterWindow = 1
)

// Window describes which part of a pager is visible.
//
//   - Inner: number of pages shown on each side of CurrentPage.
//   - Outer: number of pages shown next to the first and the last page.
type Window struct {
	CurrentPage int
	TotalPages  int
	Inner       int
	Outer       int
}

// VisiblePages is a shorthand for Window.VisiblePages.
func VisiblePages(currentPage, totalPages, inner, outer int) []int {
	return Window{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Inner:       inner,
		Outer:       outer,
	}.VisiblePages()
}

// VisiblePages returns the ascending page numbers to render. Page 1 and TotalPages
// are always present. Pages missing between two consecutive numbers are rendered
// as a single gap marker.
//
// Example, for 100 pages, Inner = 4 and Outer = 1:
//
//	CurrentPage = 1 -> [1 2 3 4 5 6 7 8 9 99 100]
//	CurrentPage = 7 -> [1 2 3 4 5 6 7 8 9 10 11 99 100]
func (w Window) VisiblePages() []int {
	if w.TotalPages < 1 {
		return []int{}
	}

	from, to := w.bounds()

	visible := slices.Collect(Range(1, w.TotalPages, false))
	leftGap := slices.Collect(Range(2+w.Outer, from, true))
	rightGap := slices.Collect(Range(to+1, w.TotalPages-w.Outer, true))

	if isHidden(leftGap) {
		visible = lo.Without(visible, leftGap...)
	}
	if isHidden(rightGap) {
		visible = lo.Without(visible, rightGap...)
	}

	return visible
}

// bounds returns the first and the last page of the inner window. The window keeps
// its 2*Inner+1 width while TotalPages allows it, sliding away from the nearest edge.
func (w Window) bounds() (from, to int) {
	from = w.CurrentPage - w.Inner
	to = w.CurrentPage + w.Inner

	if to > w.TotalPages {
		from -= to - w.TotalPages
		to = w.TotalPages
	}

	if from < 1 {
		to += 1 - from
		from = 1
		if to > w.TotalPages {
			to = w.TotalPages
		}
	}

	return from, to
}

// isHidden reports whether a gap candidate is collapsed into a gap marker. A gap
// hiding a single page is never collapsed, and descending candidates mean the
// windows overlap, so there is nothing to hide.
func isHidden(gap []int) bool {
	if len(gap) == 0 {
		return false
	}

	first, last := gap[0], gap[len(gap)-1]
	end := lo.Ternary(first > last, last-1, last+1)

	return end-first > 1
}
