package huffman_test

import (
	"fmt"

	"github.com/katalvlaran/huffviz/huffman"
)

// ExampleBuild builds the textbook alphabet and prints the final codes in
// input order.
//
// Scenario:
//
//	A:5 B:9 C:12 D:13 E:16 F:45, the most frequent symbol F ends up one
//	edge below the root.
//
// Complexity: O(N²) time.
func ExampleBuild() {
	alphabet := []huffman.WeightedSymbol{
		{Symbol: "A", Weight: 5},
		{Symbol: "B", Weight: 9},
		{Symbol: "C", Weight: 12},
		{Symbol: "D", Weight: 13},
		{Symbol: "E", Weight: 16},
		{Symbol: "F", Weight: 45},
	}
	seq, err := huffman.Build(alphabet)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	codes := seq.Codes()
	for _, in := range alphabet {
		fmt.Printf("%s=%s\n", in.Symbol, codes[in.Symbol])
	}
	fmt.Println("steps:", seq.Len())
	// Output:
	// A=1100
	// B=1101
	// C=100
	// D=101
	// E=111
	// F=0
	// steps: 41
}

// ExampleSequence_IndexOf jumps straight to the first merge, the way a
// player's "jump to section" button does.
func ExampleSequence_IndexOf() {
	seq, _ := huffman.Build([]huffman.WeightedSymbol{
		{Symbol: "x", Weight: 1},
		{Symbol: "y", Weight: 1},
		{Symbol: "z", Weight: 2},
	})
	i := seq.IndexOf(huffman.Merging)
	s, _ := seq.At(i)
	fmt.Println(i, s.Phase, s.Highlighted)
	fmt.Println(s.Description)
	// Output:
	// 2 MERGING [1 2 4]
	// Merge x (1) and y (1) under new parent 4 with weight 2.
}
