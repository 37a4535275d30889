package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section describes a heading-bounded region of a document.
//
// Start is the byte offset of the heading line; End is the offset just past
// the section's last byte (the start of the bounding heading's line, or the
// document length when no heading follows).
type Section struct {
	Start int
	End   int
}

// FindSection locates the section introduced by the first heading of the given
// level whose text equals title. The section extends to the next heading with
// level <= boundLevel, or to end of document.
//
// Headings inside fenced code blocks are not headings to the parser, so
// example code containing '#' cannot produce false matches.
func FindSection(source []byte, level int, title string, boundLevel int) (Section, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	found := false
	sec := Section{}

	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		start, text, ok := headingPosition(source, h)
		if !ok {
			return gmast.WalkContinue, nil
		}

		if found {
			if h.Level <= boundLevel {
				sec.End = start
				return gmast.WalkStop, nil
			}
			return gmast.WalkContinue, nil
		}

		if h.Level == level && text == title {
			found = true
			sec.Start = start
			sec.End = len(source)
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return Section{}, fmt.Errorf("walk document: %w", err)
	}
	if !found {
		return Section{}, fmt.Errorf("heading %q: %w", title, ErrSectionNotFound)
	}
	return sec, nil
}

// headingPosition returns the byte offset of the heading's line start and its
// trimmed text content. Setext and empty ATX headings are skipped.
func headingPosition(source []byte, h *gmast.Heading) (int, string, bool) {
	if h.Lines().Len() == 0 {
		return 0, "", false
	}
	seg := h.Lines().At(0)

	// Walk back from the text segment to the start of the line, then make
	// sure this is an ATX heading (the marker precedes the text on the line).
	lineStart := seg.Start
	for lineStart > 0 && source[lineStart-1] != '\n' {
		lineStart--
	}
	marker := bytes.TrimLeft(source[lineStart:seg.Start], " ")
	if len(marker) == 0 || marker[0] != '#' {
		return 0, "", false
	}

	last := h.Lines().At(h.Lines().Len() - 1)
	text := string(bytes.TrimSpace(source[seg.Start:last.Stop]))
	return lineStart, text, true
}
