// Package render draws huffman steps for a terminal: the node table with
// highlight markers, an ASCII forest of the partial tree, the codes finished
// so far and the highlighted slice of the reference listing.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/huffviz/huffman"
	"github.com/katalvlaran/huffviz/listing"
	"github.com/olekukonko/tablewriter"
)

// Marker prefixes highlighted nodes and listing lines.
const Marker = "*"

func idCell(id int) string {
	if id == 0 {
		return "-"
	}
	return strconv.Itoa(id)
}

// NodeTable writes one row per node of s: the classic HT array view with
// id, symbol, weight, parent and children.
func NodeTable(w io.Writer, s huffman.Step) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"", "ID", "Symbol", "Weight", "Parent", "Left", "Right"})
	tbl.SetAutoFormatHeaders(false)
	for _, nd := range s.Nodes {
		mark := ""
		if s.IsHighlighted(nd.ID) {
			mark = Marker
		}
		tbl.Append([]string{
			mark,
			strconv.Itoa(nd.ID),
			nd.Symbol,
			huffman.FormatWeight(nd.Weight),
			idCell(nd.ParentID),
			idCell(nd.LeftChildID),
			idCell(nd.RightChildID),
		})
	}
	tbl.Render()
}

// Codes writes the codes carried by s, in leaf id order. Steps without codes
// produce no output.
func Codes(w io.Writer, s huffman.Step) {
	if len(s.LeafCodes) == 0 {
		return
	}
	ids := make([]int, 0, len(s.LeafCodes))
	for id := range s.LeafCodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Leaf", "Symbol", "Code", "Bits"})
	tbl.SetAutoFormatHeaders(false)
	for _, id := range ids {
		nd, _ := s.Node(id)
		code := s.LeafCodes[id]
		tbl.Append([]string{strconv.Itoa(id), nd.Symbol, code, strconv.Itoa(len(code))})
	}
	tbl.Render()
}

// Tree writes every subtree of s whose root is still unattached, largest id
// first, so the final step shows the single finished tree.
//
//	11 (100)
//	├── 0: F (45)
//	└── 1: 10 (55)
func Tree(w io.Writer, s huffman.Step) error {
	var roots []huffman.Node
	for _, nd := range s.Nodes {
		if nd.ParentID == 0 {
			roots = append(roots, nd)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].ID > roots[j].ID })

	var b strings.Builder
	for _, r := range roots {
		b.WriteString(nodeLabel(s, r, ""))
		b.WriteString("\n")
		writeChildren(&b, s, r, "")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeChildren(b *strings.Builder, s huffman.Step, nd huffman.Node, indent string) {
	if nd.IsLeaf {
		return
	}
	kids := []struct {
		id  int
		bit string
	}{{nd.LeftChildID, "0"}, {nd.RightChildID, "1"}}
	for i, k := range kids {
		child, ok := s.Node(k.id)
		if !ok {
			continue
		}
		branch, next := "├── ", "│   "
		if i == len(kids)-1 {
			branch, next = "└── ", "    "
		}
		b.WriteString(indent + branch + nodeLabel(s, child, k.bit+": "))
		b.WriteString("\n")
		writeChildren(b, s, child, indent+next)
	}
}

func nodeLabel(s huffman.Step, nd huffman.Node, prefix string) string {
	mark := ""
	if s.IsHighlighted(nd.ID) {
		mark = Marker
	}
	label := fmt.Sprintf("%s%s%s (%s)", prefix, mark, nd.Label(), huffman.FormatWeight(nd.Weight))
	if nd.ID == s.BacktraceNodeID {
		label += " <"
	}
	return label
}

// Listing writes the section of lst covered by r with line numbers.
func Listing(w io.Writer, lst listing.Listing, r huffman.LineRange) error {
	var b strings.Builder
	for _, ln := range lst.Section(r) {
		fmt.Fprintf(&b, "%s%3d | %s\n", Marker, ln.Number, ln.Text)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Step writes the header, description, tree, table and codes of step i.
func Step(w io.Writer, i, total int, s huffman.Step) error {
	if _, err := fmt.Fprintf(w, "[%d/%d] %s: %s\n", i+1, total, s.Phase, s.Description); err != nil {
		return err
	}
	if s.Phase == huffman.Coding {
		if _, err := fmt.Fprintf(w, "leaf %d, partial code %q\n", s.ActiveLeafID, s.PartialCode); err != nil {
			return err
		}
	}
	if err := Tree(w, s); err != nil {
		return err
	}
	NodeTable(w, s)
	Codes(w, s)
	return nil
}
