package huffman_test

import (
	"testing"

	"github.com/katalvlaran/huffviz/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// finalNodes builds the classic tree and returns its complete node table.
func finalNodes(t *testing.T) []huffman.Node {
	t.Helper()
	seq, err := huffman.Build(classic)
	require.NoError(t, err)
	return seq.Final().Nodes
}

// TestValidate_Corruptions flips one field at a time on a valid tree.
func TestValidate_Corruptions(t *testing.T) {
	require.NoError(t, huffman.Validate(finalNodes(t)))

	cases := []struct {
		name   string
		mutate func(nodes []huffman.Node)
	}{
		{"wrong weight", func(n []huffman.Node) { n[6].Weight = 15 }},
		{"second root", func(n []huffman.Node) { n[0].ParentID = 0 }},
		{"foreign parent", func(n []huffman.Node) { n[0].ParentID = 8 }},
		{"leaf with child", func(n []huffman.Node) { n[0].LeftChildID = 2 }},
		{"same child twice", func(n []huffman.Node) { n[6].RightChildID = 1 }},
		{"id gap", func(n []huffman.Node) { n[3].ID = 40 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nodes := finalNodes(t)
			tc.mutate(nodes)
			assert.ErrorIs(t, huffman.Validate(nodes), huffman.ErrMalformedTree)
		})
	}
	assert.ErrorIs(t, huffman.Validate(nil), huffman.ErrMalformedTree)
}

// TestStats covers depths, weighted path length and the code checks.
func TestStats(t *testing.T) {
	nodes := finalNodes(t)
	assert.Equal(t, map[int]int{1: 4, 2: 4, 3: 3, 4: 3, 5: 3, 6: 1}, huffman.Depths(nodes))
	// 5·4 + 9·4 + 12·3 + 13·3 + 16·3 + 45·1
	assert.Equal(t, 224.0, huffman.WeightedPathLength(nodes))
	assert.Equal(t, 41, huffman.ExpectedSteps(huffman.Depths(nodes)))

	assert.True(t, huffman.IsPrefixFree([]string{"0", "10", "11"}))
	assert.False(t, huffman.IsPrefixFree([]string{"0", "01"}))
	assert.Equal(t, 1.0, huffman.KraftSum([]string{"0", "10", "11"}))
	assert.Equal(t, 0.75, huffman.KraftSum([]string{"0", "10"}))
	assert.Equal(t, 1, huffman.ExpectedSteps(map[int]int{1: 0}))
}
