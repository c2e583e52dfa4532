package huffman

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Table is the indexed node table a Huffman run operates on.
//
// nodes[0] is an unused sentinel so that nodes[id] addresses node id
// directly; ids 1..n are leaves, ids n+1..2n-1 are internal slots.
type Table struct {
	nodes []Node
	n     int
}

// NewTable validates alphabet and lays out its leaves and the pre-allocated
// internal slots.
//
// Errors:
//   - ErrEmptyAlphabet if alphabet is nil or empty.
//   - ErrInvalidWeight (wrapped with index and symbol) for a weight that is
//     <= 0, NaN or infinite, or when the weights sum to infinity.
//
// Complexity: O(N) time and memory.
func NewTable(alphabet []WeightedSymbol) (*Table, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	total := 0.0
	for i, in := range alphabet {
		if !(in.Weight > 0) || math.IsInf(in.Weight, 0) {
			return nil, errors.Wrapf(ErrInvalidWeight, "entry %d (%q) has weight %v", i, in.Symbol, in.Weight)
		}
		total += in.Weight
	}
	// Every internal weight is bounded by the total.
	if math.IsInf(total, 0) {
		return nil, errors.Wrapf(ErrInvalidWeight, "weights of %d entries sum past the float64 range", len(alphabet))
	}

	n := len(alphabet)
	m := 2*n - 1
	t := &Table{nodes: make([]Node, m+1), n: n}
	for i, in := range alphabet {
		id := i + 1
		t.nodes[id] = Node{ID: id, Symbol: in.Symbol, Weight: in.Weight, IsLeaf: true}
	}
	for id := n + 1; id <= m; id++ {
		t.nodes[id] = Node{ID: id}
	}
	return t, nil
}

// Leaves returns N, the number of input symbols.
func (t *Table) Leaves() int { return t.n }

// Size returns M = 2N-1, the number of nodes in the finished tree.
func (t *Table) Size() int { return len(t.nodes) - 1 }

// Node returns the node with the given id.
func (t *Table) Node(id int) (Node, bool) {
	if id < 1 || id >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Nodes returns a copy of nodes 1..M.
func (t *Table) Nodes() []Node {
	return append([]Node(nil), t.nodes[1:]...)
}

// clone gives the generator a private table, leaving the caller's untouched.
func (t *Table) clone() *Table {
	return &Table{nodes: append([]Node(nil), t.nodes...), n: t.n}
}
