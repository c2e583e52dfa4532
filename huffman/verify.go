package huffman

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMalformedTree is returned by Validate when a node table does not form a
// proper Huffman tree.
var ErrMalformedTree = errors.New("huffman: malformed tree")

// Validate checks a finished node table, as found in Sequence.Final().Nodes:
//   - ids are dense and 1-based;
//   - every internal node has two distinct children pointing back at it, and
//     its weight equals the sum of theirs;
//   - leaves have no children;
//   - exactly one node (the last one) has no parent.
//
// Complexity: O(N).
func Validate(nodes []Node) error {
	if len(nodes) == 0 {
		return errors.Wrap(ErrMalformedTree, "no nodes")
	}
	at := func(id int) (Node, bool) {
		if id < 1 || id > len(nodes) {
			return Node{}, false
		}
		return nodes[id-1], true
	}

	roots := 0
	for i, nd := range nodes {
		if nd.ID != i+1 {
			return errors.Wrapf(ErrMalformedTree, "slot %d holds node %d", i+1, nd.ID)
		}
		if nd.ParentID == 0 {
			roots++
			if nd.ID != len(nodes) {
				return errors.Wrapf(ErrMalformedTree, "node %d is unattached but is not the last node", nd.ID)
			}
		} else if p, ok := at(nd.ParentID); !ok || (p.LeftChildID != nd.ID && p.RightChildID != nd.ID) {
			return errors.Wrapf(ErrMalformedTree, "node %d names parent %d which does not own it", nd.ID, nd.ParentID)
		}

		if nd.IsLeaf {
			if nd.LeftChildID != 0 || nd.RightChildID != 0 {
				return errors.Wrapf(ErrMalformedTree, "leaf %d has children", nd.ID)
			}
			continue
		}
		l, lok := at(nd.LeftChildID)
		r, rok := at(nd.RightChildID)
		if !lok || !rok || l.ID == r.ID {
			return errors.Wrapf(ErrMalformedTree, "internal node %d has children %d and %d",
				nd.ID, nd.LeftChildID, nd.RightChildID)
		}
		if l.ParentID != nd.ID || r.ParentID != nd.ID {
			return errors.Wrapf(ErrMalformedTree, "children of node %d do not point back at it", nd.ID)
		}
		if nd.Weight != l.Weight+r.Weight {
			return errors.Wrapf(ErrMalformedTree, "node %d weighs %v, children sum to %v",
				nd.ID, nd.Weight, l.Weight+r.Weight)
		}
	}
	if roots != 1 {
		return errors.Wrapf(ErrMalformedTree, "%d roots", roots)
	}
	return nil
}

// Depths maps every leaf id to its distance from the root.
// Nodes whose parent chain is broken are reported with the depth reached.
func Depths(nodes []Node) map[int]int {
	out := make(map[int]int)
	for _, nd := range nodes {
		if !nd.IsLeaf {
			continue
		}
		d := 0
		for p := nd.ParentID; p >= 1 && p <= len(nodes) && d <= len(nodes); p = nodes[p-1].ParentID {
			d++
		}
		out[nd.ID] = d
	}
	return out
}

// ExpectedSteps returns the length a Sequence must have for a tree whose
// leaves sit at the given depths.
func ExpectedSteps(depths map[int]int) int {
	n := len(depths)
	if n <= 1 {
		return 1
	}
	total := 1 + 2*(n-1)
	for _, d := range depths {
		total += 2 + d
	}
	return total
}

// WeightedPathLength is Σ weight(leaf)·depth(leaf), the total number of bits
// needed to encode a message whose symbol counts equal the weights.
func WeightedPathLength(nodes []Node) float64 {
	depths := Depths(nodes)
	total := 0.0
	for _, nd := range nodes {
		if nd.IsLeaf {
			total += nd.Weight * float64(depths[nd.ID])
		}
	}
	return total
}

// IsPrefixFree reports whether no code is a prefix of another one.
// Complexity: O(K²·L) for K codes of length up to L.
func IsPrefixFree(codes []string) bool {
	for i, a := range codes {
		for j, b := range codes {
			if i != j && strings.HasPrefix(b, a) {
				return false
			}
		}
	}
	return true
}

// KraftSum returns Σ 2^-len(code). A full binary tree yields exactly 1.
func KraftSum(codes []string) float64 {
	sum := 0.0
	for _, c := range codes {
		sum += math.Ldexp(1, -len(c))
	}
	return sum
}
