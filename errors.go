package diggpager

import "errors"

var (
	// ErrInvalidConfiguration is returned by Render when the pager cannot be
	// rendered with the given view and options.
	ErrInvalidConfiguration = errors.New("invalid pager configuration")
	// ErrInvalidSort is returned when a sort string cannot be parsed.
	ErrInvalidSort = errors.New("invalid sort")
	// ErrInvalidPageRequest is returned when a page request cannot be applied.
	ErrInvalidPageRequest = errors.New("invalid page request")
)
