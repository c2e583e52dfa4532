// Package huffman builds a Huffman tree over a weighted alphabet and records
// the whole construction as a replayable sequence of immutable steps.
//
// What:
//
//   - NewTable: turns an ordered alphabet into a 1-based node table. Leaves
//     take ids 1..N in input order; ids N+1..2N-1 are reserved for internal
//     nodes created by merges.
//   - Generate: runs the three phases of the classic array-based algorithm
//     and emits a Step after every observable sub-action:
//   - INITIALIZATION: one step, all leaves highlighted.
//   - SELECTION/MERGING: N-1 rounds; each shows the unmerged candidates,
//     then merges the two lightest (strict "<" scan, lowest id wins ties,
//     first winner becomes the left child).
//   - CODING: for every leaf, a begin step, one step per edge on the walk
//     up to the root (bit 0 for a left child, 1 for a right child,
//     prepended), and a completion step carrying the cumulative code map.
//   - Sequence: the finished, read-only list of steps with bounds-checked
//     lookup and phase search.
//
// Why:
//
//   - Teaching tools need every intermediate state, not only the final codes.
//   - Each Step owns its copy of the node table, so a renderer can jump to any
//     index in any order without recomputation.
//
// Complexity:
//
//   - Generate: Time O(N²) (linear two-minimum scan per merge) plus O(N·D)
//     for coding, where D is the tree depth. Each step copies up to 2N-1
//     nodes, so memory is O(N·S) for S steps.
//
// Errors:
//
//   - ErrEmptyAlphabet   alphabet is nil or empty
//   - ErrInvalidWeight   weight is not a finite number greater than zero
//   - ErrNilTable        Generate called with a nil table
//   - ErrIndexOutOfRange Sequence.At outside [0, Len)
//   - assertion failures (IsInvariantViolation) when an internal invariant
//     breaks; never expected for tables built by NewTable
//
// Example:
//
//	seq, err := huffman.Build([]huffman.WeightedSymbol{
//		{Symbol: "A", Weight: 5},
//		{Symbol: "B", Weight: 9},
//		{Symbol: "C", Weight: 12},
//	})
//	if err != nil {
//		return err
//	}
//	fmt.Println(seq.Len(), seq.Codes())
package huffman
