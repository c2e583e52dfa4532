package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, weights ...float64) *Table {
	t.Helper()
	in := make([]WeightedSymbol, len(weights))
	for i, w := range weights {
		in[i] = WeightedSymbol{Symbol: string(rune('A' + i)), Weight: w}
	}
	tbl, err := NewTable(in)
	require.NoError(t, err)
	return tbl
}

// TestSelectTwoMin_TieBreak checks that equal weights never displace an
// earlier winner, so the lowest id ends up as s1.
func TestSelectTwoMin_TieBreak(t *testing.T) {
	cases := []struct {
		name    string
		weights []float64
		s1, s2  int
	}{
		{"distinct ascending", []float64{1, 2, 3}, 1, 2},
		{"distinct descending", []float64{3, 2, 1}, 3, 2},
		{"pair tie", []float64{10, 10}, 1, 2},
		{"triple tie", []float64{4, 4, 4}, 1, 2},
		{"tie for second", []float64{1, 5, 5}, 1, 2},
		{"late minimum demotes", []float64{7, 7, 3}, 3, 1},
		{"tie after minimum", []float64{9, 2, 9, 2}, 2, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := mustTable(t, tc.weights...)
			s1, s2 := tbl.selectTwoMin(tbl.n + 1)
			assert.Equal(t, tc.s1, s1, "s1")
			assert.Equal(t, tc.s2, s2, "s2")
		})
	}
}

// TestSelectTwoMin_SkipsAttached ignores nodes that already have a parent.
func TestSelectTwoMin_SkipsAttached(t *testing.T) {
	tbl := mustTable(t, 1, 2, 3, 4)
	tbl.nodes[1].ParentID = 5
	tbl.nodes[2].ParentID = 5
	s1, s2 := tbl.selectTwoMin(5)
	assert.Equal(t, 3, s1)
	assert.Equal(t, 4, s2)
	assert.Equal(t, []int{3, 4}, tbl.candidates(5))
}

// TestSelectTwoMin_NotEnoughCandidates reports a missing second winner as 0.
func TestSelectTwoMin_NotEnoughCandidates(t *testing.T) {
	tbl := mustTable(t, 1, 2)
	tbl.nodes[1].ParentID = 3
	s1, s2 := tbl.selectTwoMin(3)
	assert.Equal(t, 2, s1)
	assert.Equal(t, 0, s2)
}

// TestGenerate_BrokenTable turns a corrupted table into an invariant
// violation instead of a partial sequence.
func TestGenerate_BrokenTable(t *testing.T) {
	tbl := mustTable(t, 1, 2, 3)
	tbl.nodes[1].ParentID = 5
	tbl.nodes[2].ParentID = 5

	seq, err := Generate(tbl)
	assert.Nil(t, seq)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
	assert.False(t, IsConfigurationError(err))
}
