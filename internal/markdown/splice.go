// Package markdown provides a minimal structured model over reference pages:
// locating heading-bounded sections and table anchor rows by byte offset, and
// splicing replacements into the original source without re-rendering
// untouched content.
package markdown

import (
	"fmt"
	"sort"
)

// Splice represents a targeted byte-range replacement.
//
// Start and End are byte offsets into the original source, with End exclusive.
// Text replaces source[Start:End]. An insertion has Start == End.
type Splice struct {
	Start int
	End   int
	Text  []byte
}

// Apply applies a set of non-overlapping splices to source and returns the
// updated content. Offsets refer to the original source; splices may be given
// in any order. The original slice is not modified.
func Apply(source []byte, splices []Splice) ([]byte, error) {
	if len(splices) == 0 {
		return source, nil
	}

	ordered := make([]Splice, len(splices))
	copy(ordered, splices)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Start == ordered[j].Start {
			return ordered[i].End < ordered[j].End
		}
		return ordered[i].Start < ordered[j].Start
	})

	for i, s := range ordered {
		if s.Start < 0 || s.End < s.Start || s.End > len(source) {
			return nil, fmt.Errorf("splice %d: invalid range [%d,%d) for %d bytes", i, s.Start, s.End, len(source))
		}
		if i > 0 && s.Start < ordered[i-1].End {
			return nil, fmt.Errorf("splice %d: overlaps preceding range", i)
		}
	}

	var out []byte
	cursor := 0
	for _, s := range ordered {
		out = append(out, source[cursor:s.Start]...)
		out = append(out, s.Text...)
		cursor = s.End
	}
	out = append(out, source[cursor:]...)
	return out, nil
}
