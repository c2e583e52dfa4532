// Package listing holds the reference source a visualizer shows next to the
// tree, and maps a step's huffman.LineRange onto numbered, highlighted lines.
package listing

import (
	"strings"

	"github.com/katalvlaran/huffviz/huffman"
)

// Line is one numbered line of a listing.
type Line struct {
	Number      int // 1-based
	Text        string
	Highlighted bool
}

// Listing is an immutable, line-addressable block of source text.
type Listing struct {
	lines []string
}

// New splits text into lines. A trailing newline does not add an empty line.
func New(text string) Listing {
	text = strings.TrimSuffix(text, "\n")
	return Listing{lines: strings.Split(text, "\n")}
}

// Reference returns the routine matching huffman.DefaultLineRanges.
func Reference() Listing {
	return New(referenceSource)
}

// Len returns the number of lines.
func (l Listing) Len() int { return len(l.lines) }

// Line returns line n (1-based).
func (l Listing) Line(n int) (string, bool) {
	if n < 1 || n > len(l.lines) {
		return "", false
	}
	return l.lines[n-1], true
}

// Lines returns every line, flagging those inside r.
func (l Listing) Lines(r huffman.LineRange) []Line {
	out := make([]Line, len(l.lines))
	for i, text := range l.lines {
		out[i] = Line{Number: i + 1, Text: text, Highlighted: r.Contains(i + 1)}
	}
	return out
}

// Section returns only the lines inside r, clamped to the listing bounds.
// An empty or inverted range yields nil.
func (l Listing) Section(r huffman.LineRange) []Line {
	start, end := max(r.Start, 1), min(r.End, len(l.lines))
	if start > end {
		return nil
	}
	out := make([]Line, 0, end-start+1)
	for n := start; n <= end; n++ {
		out = append(out, Line{Number: n, Text: l.lines[n-1], Highlighted: true})
	}
	return out
}

// String joins the lines back into text.
func (l Listing) String() string {
	return strings.Join(l.lines, "\n")
}
