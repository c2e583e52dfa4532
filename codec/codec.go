// Package codec turns a finished huffman.Sequence into a codebook and uses it
// to pack symbol messages into bit streams and back.
//
// A one-symbol alphabet has no code in the step sequence; the codebook gives
// that symbol the code "0" so messages over it still round-trip.
package codec

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/icza/bitio"
	"github.com/katalvlaran/huffviz/huffman"
)

var (
	// ErrDuplicateSymbol is returned by NewCodebook when two leaves share a
	// symbol, which would make encoding ambiguous.
	ErrDuplicateSymbol = errors.New("codec: duplicate symbol in alphabet")

	// ErrUnknownSymbol is returned by Encode for a symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("codec: symbol not in codebook")

	// ErrCorruptStream is returned by Decode when the bits do not end on a
	// symbol boundary or walk off the tree.
	ErrCorruptStream = errors.New("codec: corrupt bit stream")
)

// Codebook maps symbols to codes and walks the tree to decode.
type Codebook struct {
	codes map[string]string
	nodes []huffman.Node // final tree, nodes[id-1]
	root  int
}

// NewCodebook reads the final tree and codes of seq.
func NewCodebook(seq *huffman.Sequence) (*Codebook, error) {
	if seq == nil {
		return nil, errors.New("codec: sequence is nil")
	}
	final := seq.Final()
	cb := &Codebook{
		codes: make(map[string]string, seq.Leaves()),
		nodes: final.Nodes,
		root:  len(final.Nodes),
	}
	leafCodes := seq.LeafCodes()
	for _, nd := range final.Nodes {
		if !nd.IsLeaf {
			continue
		}
		if _, dup := cb.codes[nd.Symbol]; dup {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "%q", nd.Symbol)
		}
		code, ok := leafCodes[nd.ID]
		if !ok {
			code = "0"
		}
		cb.codes[nd.Symbol] = code
	}
	return cb, nil
}

// Code returns the code of sym.
func (c *Codebook) Code(sym string) (string, bool) {
	code, ok := c.codes[sym]
	return code, ok
}

// Len returns the number of symbols.
func (c *Codebook) Len() int { return len(c.codes) }

// Encode writes the codes of msg to w and returns the number of payload bits.
// The last byte is zero-padded; pass the bit count to Decode.
func (c *Codebook) Encode(w io.Writer, msg []string) (int, error) {
	bw := bitio.NewWriter(w)
	bits := 0
	for i, sym := range msg {
		code, ok := c.codes[sym]
		if !ok {
			return bits, errors.Wrapf(ErrUnknownSymbol, "symbol %q at position %d", sym, i)
		}
		for j := 0; j < len(code); j++ {
			if err := bw.WriteBool(code[j] == '1'); err != nil {
				return bits, errors.Wrap(err, "codec: write")
			}
		}
		bits += len(code)
	}
	if err := bw.Close(); err != nil {
		return bits, errors.Wrap(err, "codec: flush")
	}
	return bits, nil
}

// Decode reads nbits bits from r and maps them back to symbols.
func (c *Codebook) Decode(r io.Reader, nbits int) ([]string, error) {
	br := bitio.NewReader(r)
	var out []string
	cur := c.root
	for i := 0; i < nbits; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return out, errors.Wrapf(err, "codec: read bit %d", i)
		}
		nd := c.nodes[cur-1]
		if nd.IsLeaf {
			// Single-leaf tree: every symbol is the lone "0".
			if bit {
				return out, errors.Wrapf(ErrCorruptStream, "bit %d is 1 in a one-symbol stream", i)
			}
			out = append(out, nd.Symbol)
			continue
		}
		if bit {
			cur = nd.RightChildID
		} else {
			cur = nd.LeftChildID
		}
		if next := c.nodes[cur-1]; next.IsLeaf {
			out = append(out, next.Symbol)
			cur = c.root
		}
	}
	if cur != c.root {
		return out, errors.Wrapf(ErrCorruptStream, "stream ends inside a code")
	}
	return out, nil
}

// Tokenize splits text into one symbol per rune.
func Tokenize(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

// Stats summarizes how well the codebook compresses msg.
type Stats struct {
	Symbols      int     // message length
	EncodedBits  int     // Σ len(code)
	FixedBits    int     // bits for a fixed-width code over the same alphabet
	AverageBits  float64 // EncodedBits / Symbols
	SpaceSavings float64 // 1 - EncodedBits/FixedBits
}

// Stats measures msg without writing anything.
func (c *Codebook) Stats(msg []string) (Stats, error) {
	st := Stats{Symbols: len(msg)}
	for i, sym := range msg {
		code, ok := c.codes[sym]
		if !ok {
			return Stats{}, errors.Wrapf(ErrUnknownSymbol, "symbol %q at position %d", sym, i)
		}
		st.EncodedBits += len(code)
	}
	width := 1
	for 1<<width < len(c.codes) {
		width++
	}
	st.FixedBits = width * len(msg)
	if st.Symbols > 0 {
		st.AverageBits = float64(st.EncodedBits) / float64(st.Symbols)
		st.SpaceSavings = 1 - float64(st.EncodedBits)/float64(st.FixedBits)
	}
	return st, nil
}
