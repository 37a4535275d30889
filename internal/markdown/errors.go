package markdown

import "errors"

var (
	// ErrAnchorNotFound indicates the props-table anchor row is absent from a
	// document. Callers must surface this instead of silently leaving the
	// file unchanged.
	ErrAnchorNotFound = errors.New("anchor row not found")

	// ErrSectionNotFound indicates the requested heading is absent from a
	// document.
	ErrSectionNotFound = errors.New("section heading not found")
)
