package huffman

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyAlphabet is returned by NewTable when the alphabet is nil or empty.
	// A tree without leaves is undefined.
	ErrEmptyAlphabet = errors.New("huffman: alphabet is empty")

	// ErrInvalidWeight is returned by NewTable when a weight is not a finite
	// number strictly greater than zero.
	ErrInvalidWeight = errors.New("huffman: weight must be a finite number > 0")

	// ErrNilTable is returned by Generate when it receives a nil *Table.
	ErrNilTable = errors.New("huffman: table is nil")

	// ErrIndexOutOfRange is returned by Sequence.At for indices outside [0, Len).
	ErrIndexOutOfRange = errors.New("huffman: step index out of range")
)

// IsConfigurationError reports whether err was caused by a malformed input
// alphabet (empty alphabet or a bad weight).
func IsConfigurationError(err error) bool {
	return errors.IsAny(err, ErrEmptyAlphabet, ErrInvalidWeight)
}

// IsInvariantViolation reports whether err signals an internal fault of the
// builder or generator. Such errors never depend on user input.
func IsInvariantViolation(err error) bool {
	return errors.HasAssertionFailure(err)
}

// WeightedSymbol is one input entry: a symbol and its frequency.
// Symbols need not be unique; duplicates become independent leaves.
type WeightedSymbol struct {
	Symbol string
	Weight float64
}

// Node is one slot of the Huffman tree, leaf or internal.
//
// Zero ids mean "none": ParentID is 0 until the node is merged, and the child
// ids stay 0 for leaves. Node holds no pointers, so copying a []Node yields a
// fully independent table.
type Node struct {
	ID           int
	Symbol       string // empty for internal nodes
	Weight       float64
	ParentID     int
	LeftChildID  int
	RightChildID int
	IsLeaf       bool
}

// Label returns the symbol for leaves and the decimal id for internal nodes.
func (n Node) Label() string {
	if n.IsLeaf && n.Symbol != "" {
		return n.Symbol
	}
	return fmt.Sprintf("%d", n.ID)
}

// Phase identifies which part of the algorithm produced a step.
type Phase int

const (
	// Initialization is the single step emitted after the leaves are filled.
	Initialization Phase = iota
	// Selection shows the unmerged candidates before two minima are picked.
	Selection
	// Merging shows two winners joined under a new internal node.
	Merging
	// Coding covers the per-leaf backtrace from leaf to root.
	Coding
)

var phaseNames = [...]string{
	Initialization: "INITIALIZATION",
	Selection:      "SELECTION",
	Merging:        "MERGING",
	Coding:         "CODING",
}

// String returns the upper-case phase name, e.g. "SELECTION".
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// ParsePhase maps an upper- or lower-case phase name back to a Phase.
func ParsePhase(s string) (Phase, error) {
	for i, name := range phaseNames {
		if strings.EqualFold(name, s) {
			return Phase(i), nil
		}
	}
	return 0, errors.Newf("huffman: unknown phase %q", s)
}

// LineRange marks a closed, 1-based range of lines in the reference listing.
// The generator treats it as opaque data.
type LineRange struct {
	Start int
	End   int
}

// Contains reports whether line falls inside the range.
func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// String renders the range as "start-end".
func (r LineRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// LineRanges groups the listing sections each phase points into.
type LineRanges struct {
	Select LineRange
	Create LineRange
	Coding LineRange
}

// DefaultLineRanges matches the sections of listing.Reference().
func DefaultLineRanges() LineRanges {
	return LineRanges{
		Select: LineRange{Start: 19, End: 32},
		Create: LineRange{Start: 34, End: 52},
		Coding: LineRange{Start: 54, End: 66},
	}
}

// Step is an immutable snapshot of the algorithm at one observable instant.
//
// Fields:
//   - Nodes holds every node defined at that instant: all leaves plus the
//     internal nodes merged so far, ordered by id.
//   - ActiveLeafID and BacktraceNodeID are 0 outside of CODING.
//   - PartialCode holds the bits collected so far for the active leaf.
//   - CodesSoFar and LeafCodes are nil except on coding-complete steps, where
//     they carry every code finished up to and including that leaf.
type Step struct {
	Phase           Phase
	Description     string
	Highlighted     []int
	Nodes           []Node
	Lines           LineRange
	ActiveLeafID    int
	BacktraceNodeID int
	PartialCode     string
	CodesSoFar      map[string]string
	LeafCodes       map[int]string
}

// Clone returns a deep copy of s.
// Complexity: O(len(Nodes) + len(CodesSoFar)).
func (s Step) Clone() Step {
	out := s
	if s.Highlighted != nil {
		out.Highlighted = append([]int(nil), s.Highlighted...)
	}
	if s.Nodes != nil {
		out.Nodes = append([]Node(nil), s.Nodes...)
	}
	if s.CodesSoFar != nil {
		out.CodesSoFar = make(map[string]string, len(s.CodesSoFar))
		for k, v := range s.CodesSoFar {
			out.CodesSoFar[k] = v
		}
	}
	if s.LeafCodes != nil {
		out.LeafCodes = make(map[int]string, len(s.LeafCodes))
		for k, v := range s.LeafCodes {
			out.LeafCodes[k] = v
		}
	}
	return out
}

// Node looks up a node of this snapshot by id.
func (s Step) Node(id int) (Node, bool) {
	// Nodes are stored densely by id, so index id-1 is the fast path.
	if id >= 1 && id <= len(s.Nodes) && s.Nodes[id-1].ID == id {
		return s.Nodes[id-1], true
	}
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// IsHighlighted reports whether id is among the highlighted nodes.
func (s Step) IsHighlighted(id int) bool {
	for _, h := range s.Highlighted {
		if h == id {
			return true
		}
	}
	return false
}
