package diggpager

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Renderer renders Digg-style pagers with a fixed set of options. It is safe for
// concurrent use.
type Renderer struct {
	opts Options
}

// NewRenderer returns a Renderer starting from DefaultOptions.
func NewRenderer(opts ...Option) *Renderer {
	o := DefaultOptions()
	o.apply(opts...)

	return &Renderer{opts: o.clone()}
}

// NewRendererWithOptions returns a Renderer using a copy of o.
func NewRendererWithOptions(o Options) *Renderer {
	return &Renderer{opts: o.clone()}
}

// Options returns a copy of the renderer options. Changing it does not affect the
// renderer.
func (r *Renderer) Options() Options {
	return r.opts.clone()
}

// Render is a shorthand for NewRenderer(opts...).Render(view).
func Render(view PagedView, opts ...Option) (string, error) {
	return NewRenderer(opts...).Render(view)
}

// RenderHTML is Render for html/template callers.
func RenderHTML(view PagedView, opts ...Option) (template.HTML, error) {
	s, err := Render(view, opts...)

	return template.HTML(s), err
}

// Render returns the pager HTML:
//
//	<container attrs>previous SEP pages and gaps SEP next</container>
//
// An empty string with a nil error means there is nothing to paginate: the view
// has fewer than two pages. ErrInvalidConfiguration is returned when view is nil
// or the options are invalid.
func (r *Renderer) Render(view PagedView) (string, error) {
	fragments, err := r.Fragments(view)
	if err != nil || fragments == nil {
		return "", err
	}

	parts := lo.Map(fragments, func(f Fragment, _ int) string {
		return f.HTML()
	})

	return tag(r.opts.Container, r.opts.Attributes, strings.Join(parts, *r.opts.Separator)), nil
}

// Fragments returns the pager pieces in render order. It returns nil without an
// error when the view has fewer than two pages.
func (r *Renderer) Fragments(view PagedView) ([]Fragment, error) {
	err := r.validate(view)
	if err != nil {
		return nil, fmt.Errorf("cannot render pager: %w", err)
	}

	if view.TotalPages() < 2 {
		return nil, nil
	}

	urlFor := r.opts.urlBuilder()

	var pages []Fragment
	if r.opts.WindowLinks {
		pages = r.windowedLinks(view, urlFor)
	}

	prev, hasPrev := view.PreviousPage()
	next, hasNext := view.NextPage()

	fragments := make([]Fragment, 0, len(pages)+2)
	fragments = append(fragments, control(prev, hasPrev, r.opts.PreviousLabel, previousPageClass, urlFor))
	fragments = append(fragments, pages...)
	fragments = append(fragments, control(next, hasNext, r.opts.NextLabel, nextPageClass, urlFor))

	return fragments, nil
}

func (r *Renderer) validate(view PagedView) error {
	if lo.IsNil(view) {
		return fmt.Errorf("%w: paged view is nil", ErrInvalidConfiguration)
	}

	return r.opts.validate()
}

// windowedLinks returns the page numbers with a Gap wherever consecutive visible
// pages are not adjacent.
func (r *Renderer) windowedLinks(view PagedView, urlFor URLBuilder) []Fragment {
	current := view.CurrentPage()
	visible := Window{
		CurrentPage: current,
		TotalPages:  view.TotalPages(),
		Inner:       r.opts.InnerWindow,
		Outer:       r.opts.OuterWindow,
	}.VisiblePages()

	if !lo.IsNil(r.opts.Logger) {
		r.opts.Logger.WithFields(logrus.Fields{
			"current_page":  current,
			"total_pages":   view.TotalPages(),
			"visible_pages": visible,
		}).Debug("pager window computed")
	}

	ret := make([]Fragment, 0, 2*len(visible))
	for i, page := range visible {
		if i > 0 && page > visible[i-1]+1 {
			ret = append(ret, Gap{})
		}

		text := strconv.Itoa(page)
		if page == current {
			ret = append(ret, Label{Text: text, Class: currentPageClass})
		} else {
			ret = append(ret, Link{URL: urlFor(page), Text: text})
		}
	}

	return ret
}

// control returns a link to page, or a disabled label when there is no such page.
func control(page int, ok bool, text, class string, urlFor URLBuilder) Fragment {
	if !ok {
		return Label{Text: text, Class: class}
	}

	return Link{URL: urlFor(page), Text: text}
}
