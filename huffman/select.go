package huffman

import "math"

// candidates lists, in id order, the nodes with id < next that are still
// unattached (ParentID == 0).
func (t *Table) candidates(next int) []int {
	out := make([]int, 0, next-1)
	for j := 1; j < next; j++ {
		if t.nodes[j].ParentID == 0 {
			out = append(out, j)
		}
	}
	return out
}

// selectTwoMin runs the single-pass two-minimum scan over ids 1..next-1.
//
// Comparisons are strict, so among equal weights the first one encountered
// (the lowest id) keeps its place. s1 holds the smallest weight, s2 the
// second smallest. A zero id means no winner was found.
//
// Complexity: O(next).
func (t *Table) selectTwoMin(next int) (s1, s2 int) {
	min1, min2 := math.Inf(1), math.Inf(1)
	for j := 1; j < next; j++ {
		nd := t.nodes[j]
		if nd.ParentID != 0 {
			continue
		}
		if nd.Weight < min1 {
			min2, s2 = min1, s1
			min1, s1 = nd.Weight, j
		} else if nd.Weight < min2 {
			min2, s2 = nd.Weight, j
		}
	}
	return s1, s2
}
