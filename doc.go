// Package diggpager renders "Digg-style" numbered pagers for offset paginated lists.
//
// Overview
//
// A pager shows previous and next controls, a window of page numbers around the
// current page, the first and last pages as anchors, and an ellipsis wherever a run
// of pages is hidden:
//
//	← 1 2 … 6 7 [8] 9 10 … 99 100 →
//
// Key concepts
//   - Range: lazy ascending or descending integer sequences.
//   - Window: the visible page computation. Inner is the number of pages shown on
//     each side of the current page, Outer the number of pages kept next to the
//     first and the last page.
//   - PagedList: an offset/limit page over a slice or a GORM query (see Paginate).
//   - Render: turns a PagedView into HTML, using a URLBuilder for the links.
//
// Usage:
//
//	list := diggpager.NewPagedList(items, req.Index(), req.Size())
//	html, err := diggpager.Render(list,
//		diggpager.WithAttributes(map[string]string{"class": "pagination"}),
//		diggpager.WithURLBuilder(diggpager.QueryURLBuilder("/users", r.URL.Query())),
//	)
//	if err != nil {
//		return err
//	}
//	if html == "" {
//		// a single page, nothing to paginate
//	}
package diggpager
