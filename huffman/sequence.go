package huffman

import "github.com/cockroachdb/errors"

// Sequence is the finished, read-only list of steps of one Huffman run.
// Accessors hand out clones, so callers cannot alter the recorded history.
type Sequence struct {
	steps  []Step
	leaves int
}

// Len returns the number of steps.
// For N >= 2 it equals 1 + 2(N-1) + Σ(2 + depth(leaf)); for N == 1 it is 1.
func (s *Sequence) Len() int { return len(s.steps) }

// Leaves returns the number of input symbols the sequence was built from.
func (s *Sequence) Leaves() int { return s.leaves }

// At returns a copy of step i.
func (s *Sequence) At(i int) (Step, error) {
	if i < 0 || i >= len(s.steps) {
		return Step{}, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(s.steps))
	}
	return s.steps[i].Clone(), nil
}

// IndexOf returns the index of the first step in phase p, or -1.
func (s *Sequence) IndexOf(p Phase) int {
	for i := range s.steps {
		if s.steps[i].Phase == p {
			return i
		}
	}
	return -1
}

// Steps returns copies of all steps in order.
func (s *Sequence) Steps() []Step {
	out := make([]Step, len(s.steps))
	for i := range s.steps {
		out[i] = s.steps[i].Clone()
	}
	return out
}

// Final returns a copy of the last step. Its Nodes hold the complete tree.
// A Sequence not produced by Generate has no steps and yields a zero Step.
func (s *Sequence) Final() Step {
	if len(s.steps) == 0 {
		return Step{}
	}
	return s.steps[len(s.steps)-1].Clone()
}

// Codes returns the finished symbol -> code map. Duplicate symbols keep the
// code of their last occurrence; use LeafCodes to tell them apart. The map is
// empty for single-symbol alphabets.
func (s *Sequence) Codes() map[string]string {
	if len(s.steps) == 0 || s.steps[len(s.steps)-1].CodesSoFar == nil {
		return map[string]string{}
	}
	return copyCodes(s.steps[len(s.steps)-1].CodesSoFar)
}

// LeafCodes returns the finished leaf id -> code map.
func (s *Sequence) LeafCodes() map[int]string {
	if len(s.steps) == 0 || s.steps[len(s.steps)-1].LeafCodes == nil {
		return map[int]string{}
	}
	return copyLeafCodes(s.steps[len(s.steps)-1].LeafCodes)
}
