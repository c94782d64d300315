package diggpager

import (
	"fmt"
	"html"
)

const (
	currentPageClass  = "current"
	previousPageClass = "disabled prev_page"
	nextPageClass     = "disabled next_page"

	gapMarker = `<span class="gap">&hellip;</span>`
)

// Fragment is one piece of a rendered pager: a Link, a Label or a Gap.
//
// Text of links and labels is written as is, so it may carry HTML entities such as
// "&larr;". URLs and classes are escaped.
type Fragment interface {
	HTML() string
	fragment()
}

// Link navigates to another page.
type Link struct {
	URL  string
	Text string
}

// Label is an inert piece of text: the current page or a disabled control.
type Label struct {
	Text  string
	Class string
}

// Gap marks a run of hidden pages.
type Gap struct{}

func (l Link) HTML() string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(l.URL), l.Text)
}

func (l Label) HTML() string {
	return fmt.Sprintf(`<span class="%s">%s</span>`, html.EscapeString(l.Class), l.Text)
}

func (Gap) HTML() string {
	return gapMarker
}

func (Link) fragment()  {}
func (Label) fragment() {}
func (Gap) fragment()   {}

var (
	_ Fragment = Link{}
	_ Fragment = Label{}
	_ Fragment = Gap{}
)
