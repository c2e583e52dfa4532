package huffman

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// generator owns the mutable state of one run. Nothing in it escapes except
// through snapshot copies.
type generator struct {
	cfg generatorConfig
	t   *Table

	// defined is the highest node id visible in snapshots: the leaves at
	// first, then each newly merged internal node.
	defined int

	steps     []Step
	codes     map[string]string
	leafCodes map[int]string
}

// Build is NewTable followed by Generate.
func Build(alphabet []WeightedSymbol, opts ...Option) (*Sequence, error) {
	t, err := NewTable(alphabet)
	if err != nil {
		return nil, err
	}
	return Generate(t, opts...)
}

// Generate runs the full construction and coding over a copy of t and returns
// the finished step sequence. t itself is not modified, so calling Generate
// twice on the same table yields equal sequences.
//
// Steps:
//  1. INITIALIZATION: one step highlighting every leaf.
//  2. For i = N+1..2N-1: a SELECTION step over the unattached candidates,
//     then a MERGING step for the two lightest (s1 left, s2 right).
//  3. CODING for each leaf 1..N: begin, one step per edge up to the root,
//     then completion with the cumulative code map.
//
// With N == 1 only the INITIALIZATION step is produced and no code exists.
//
// Errors: ErrNilTable, or an assertion failure (see IsInvariantViolation)
// when the scan cannot find two winners or the finished tree is malformed.
// No partial sequence is returned on error.
//
// Complexity: O(N²) for selection plus O(S·N) for the S snapshots.
func Generate(t *Table, opts ...Option) (*Sequence, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	g := &generator{
		cfg:       newGeneratorConfig(opts...),
		t:         t.clone(),
		defined:   t.n,
		codes:     make(map[string]string, t.n),
		leafCodes: make(map[int]string, t.n),
	}

	g.initialize()
	if err := g.construct(); err != nil {
		return nil, err
	}
	if err := Validate(g.t.nodes[1:]); err != nil {
		return nil, errors.NewAssertionErrorWithWrappedErrf(err, "huffman: construction produced an invalid tree")
	}
	g.encode()

	g.cfg.log.Debug("huffman steps generated",
		zap.Int("leaves", t.n), zap.Int("steps", len(g.steps)))
	return &Sequence{steps: g.steps, leaves: t.n}, nil
}

// snapshot copies every defined node.
func (g *generator) snapshot() []Node {
	return append([]Node(nil), g.t.nodes[1:g.defined+1]...)
}

// emit stamps the live table onto s and appends it.
func (g *generator) emit(s Step) {
	s.Nodes = g.snapshot()
	g.cfg.log.Debug("step",
		zap.Int("index", len(g.steps)),
		zap.Stringer("phase", s.Phase),
		zap.Ints("highlighted", s.Highlighted))
	g.steps = append(g.steps, s)
}

func (g *generator) initialize() {
	leaves := make([]int, g.t.n)
	for i := range leaves {
		leaves[i] = i + 1
	}
	g.emit(Step{
		Phase:       Initialization,
		Description: g.cfg.narrator.Initialized(g.snapshot()),
		Highlighted: leaves,
		Lines:       g.cfg.lines.Create,
	})
}

func (g *generator) construct() error {
	m := g.t.Size()
	for i := g.t.n + 1; i <= m; i++ {
		cands := g.t.candidates(i)
		g.emit(Step{
			Phase:       Selection,
			Description: g.cfg.narrator.Selecting(i, cands),
			Highlighted: cands,
			Lines:       g.cfg.lines.Select,
		})

		s1, s2 := g.t.selectTwoMin(i)
		if s1 == 0 || s2 == 0 {
			return errors.AssertionFailedf("huffman: selection for node %d found %d and %d among %d candidates",
				i, s1, s2, len(cands))
		}

		nodes := g.t.nodes
		nodes[s1].ParentID = i
		nodes[s2].ParentID = i
		nodes[i].LeftChildID = s1
		nodes[i].RightChildID = s2
		nodes[i].Weight = nodes[s1].Weight + nodes[s2].Weight
		g.defined = i

		g.emit(Step{
			Phase:       Merging,
			Description: g.cfg.narrator.Merged(nodes[s1], nodes[s2], nodes[i]),
			Highlighted: []int{s1, s2, i},
			Lines:       g.cfg.lines.Create,
		})
	}
	return nil
}

// encode walks from every leaf up to the root. The tree is read only here.
func (g *generator) encode() {
	if g.t.n < 2 {
		return
	}
	nodes := g.t.nodes
	for i := 1; i <= g.t.n; i++ {
		g.emit(Step{
			Phase:           Coding,
			Description:     g.cfg.narrator.CodingStarted(nodes[i]),
			Highlighted:     []int{i},
			Lines:           g.cfg.lines.Coding,
			ActiveLeafID:    i,
			BacktraceNodeID: i,
		})

		code := ""
		for c, f := i, nodes[i].ParentID; f != 0; c, f = f, nodes[f].ParentID {
			bit := byte('1')
			if nodes[f].LeftChildID == c {
				bit = '0'
			}
			code = string(bit) + code
			g.emit(Step{
				Phase:           Coding,
				Description:     g.cfg.narrator.Backtracked(c, f, bit),
				Highlighted:     []int{c, f},
				Lines:           g.cfg.lines.Coding,
				ActiveLeafID:    i,
				BacktraceNodeID: f,
				PartialCode:     code,
			})
		}

		g.codes[nodes[i].Symbol] = code
		g.leafCodes[i] = code
		g.emit(Step{
			Phase:        Coding,
			Description:  g.cfg.narrator.CodingFinished(nodes[i], code),
			Highlighted:  []int{i},
			Lines:        g.cfg.lines.Coding,
			ActiveLeafID: i,
			PartialCode:  code,
			CodesSoFar:   copyCodes(g.codes),
			LeafCodes:    copyLeafCodes(g.leafCodes),
		})
	}
}

func copyCodes(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func copyLeafCodes(src map[int]string) map[int]string {
	out := make(map[int]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
