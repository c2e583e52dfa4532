package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/huffviz/huffman"
	"github.com/katalvlaran/huffviz/listing"
	"github.com/katalvlaran/huffviz/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T) *huffman.Sequence {
	t.Helper()
	seq, err := huffman.Build([]huffman.WeightedSymbol{
		{Symbol: "A", Weight: 1},
		{Symbol: "B", Weight: 1},
		{Symbol: "C", Weight: 2},
	})
	require.NoError(t, err)
	return seq
}

// TestTree_Final draws the finished tree with branch bits.
func TestTree_Final(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Tree(&buf, build(t).Final()))
	want := strings.Join([]string{
		"5 (4)",
		"├── 0: *C (2)",
		"└── 1: 4 (2)",
		"    ├── 0: A (1)",
		"    └── 1: B (1)",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

// TestTree_Forest lists every unattached subtree before the last merge.
func TestTree_Forest(t *testing.T) {
	seq := build(t)
	sel, err := seq.At(3) // second SELECTION: candidates 3 and 4
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Tree(&buf, sel))
	assert.Equal(t, "*4 (2)\n├── 0: A (1)\n└── 1: B (1)\n*C (2)\n", buf.String())
}

// TestTree_BacktraceMarker points at the node reached by the walk.
func TestTree_BacktraceMarker(t *testing.T) {
	seq := build(t)
	hop, err := seq.At(6) // leaf 1 walks up to node 4
	require.NoError(t, err)
	require.Equal(t, 4, hop.BacktraceNodeID)

	var buf bytes.Buffer
	require.NoError(t, render.Tree(&buf, hop))
	assert.Contains(t, buf.String(), "└── 1: *4 (2) <")
	assert.Contains(t, buf.String(), "├── 0: *A (1)")
}

// TestNodeTable marks highlighted rows.
func TestNodeTable(t *testing.T) {
	seq := build(t)
	mrg, err := seq.At(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	render.NodeTable(&buf, mrg)
	out := buf.String()
	assert.Contains(t, out, "Symbol")
	assert.Contains(t, out, "Parent")
	assert.Equal(t, 3, strings.Count(out, render.Marker), "A, B and the new parent are highlighted")
}

// TestCodes prints only steps that carry codes.
func TestCodes(t *testing.T) {
	seq := build(t)

	var empty bytes.Buffer
	first, _ := seq.At(0)
	render.Codes(&empty, first)
	assert.Empty(t, empty.String())

	var buf bytes.Buffer
	render.Codes(&buf, seq.Final())
	out := buf.String()
	for _, want := range []string{"10", "11", "Code"} {
		assert.Contains(t, out, want)
	}
}

// TestListing writes the numbered section.
func TestListing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Listing(&buf, listing.New("x\ny\nz"), huffman.LineRange{Start: 2, End: 3}))
	assert.Equal(t, "*  2 | y\n*  3 | z\n", buf.String())
}

// TestStep combines every view.
func TestStep(t *testing.T) {
	seq := build(t)
	s, err := seq.At(6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Step(&buf, 6, seq.Len(), s))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[7/16] CODING: "))
	assert.Contains(t, out, `leaf 1, partial code "0"`)
}
