package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Narrator turns structured step data into the human-readable Description.
// The generator never parses descriptions back; localized implementations can
// be swapped in with WithNarrator.
type Narrator interface {
	Initialized(leaves []Node) string
	Selecting(next int, candidates []int) string
	Merged(left, right, parent Node) string
	CodingStarted(leaf Node) string
	Backtracked(child, parent int, bit byte) string
	CodingFinished(leaf Node, code string) string
}

// EnglishNarrator is the default Narrator.
type EnglishNarrator struct{}

var _ Narrator = EnglishNarrator{}

func (EnglishNarrator) Initialized(leaves []Node) string {
	return fmt.Sprintf("Initialize the tree: fill %d leaf nodes with their symbols and weights.", len(leaves))
}

func (EnglishNarrator) Selecting(next int, candidates []int) string {
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = strconv.Itoa(c)
	}
	return fmt.Sprintf("Search the unattached nodes before %d (%s) for the two smallest weights.",
		next, strings.Join(ids, ", "))
}

func (EnglishNarrator) Merged(left, right, parent Node) string {
	return fmt.Sprintf("Merge %s (%s) and %s (%s) under new parent %d with weight %s.",
		left.Label(), FormatWeight(left.Weight),
		right.Label(), FormatWeight(right.Weight),
		parent.ID, FormatWeight(parent.Weight))
}

func (EnglishNarrator) CodingStarted(leaf Node) string {
	return fmt.Sprintf("Start building the code for %s.", leaf.Label())
}

func (EnglishNarrator) Backtracked(child, parent int, bit byte) string {
	side := "left"
	if bit == '1' {
		side = "right"
	}
	return fmt.Sprintf("Walk up from node %d to parent %d as its %s child, prepend '%c'.",
		child, parent, side, bit)
}

func (EnglishNarrator) CodingFinished(leaf Node, code string) string {
	return fmt.Sprintf("Code for %s is complete: %s", leaf.Label(), code)
}

// FormatWeight prints a weight without a trailing ".0" for whole numbers.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
