package markdown

import (
	"bytes"
	"fmt"
)

// FindAnchorRow returns the byte offset of the start of the first table-row
// line whose first cell is the backticked cell name, e.g. cell "children"
// matches a line beginning "| `children` |". Returns ErrAnchorNotFound when no
// such row exists.
func FindAnchorRow(source []byte, cell string) (int, error) {
	prefix := []byte("| `" + cell + "` |")

	offset := 0
	for _, line := range bytes.SplitAfter(source, []byte("\n")) {
		if bytes.HasPrefix(line, prefix) {
			return offset, nil
		}
		offset += len(line)
	}
	return 0, fmt.Errorf("row %q: %w", cell, ErrAnchorNotFound)
}

// HasRowBefore reports whether a table row whose first cell is the backticked
// cell name starts before the given byte offset. Row injection passes the
// anchor-row offset, scoping its idempotency check to the props table: pages
// also carry a Render Props table further down that lists the same prop names.
func HasRowBefore(source []byte, cell string, end int) bool {
	offset, err := FindAnchorRow(source, cell)
	return err == nil && offset < end
}
