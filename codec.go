package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Codec encodes sequences of symbols into bit strings and back, using the
// Huffman code built from a frequency table.
//
// A Codec is immutable once constructed, so it is safe for concurrent use by
// multiple goroutines.
type Codec[S Symbol, W Weight] struct {
	root    *Node[S, W]
	codes   map[S]Code
	symbols []S
	decoder Decoder[S]
}

// New builds a Codec from a map of symbol frequencies.  Ties between equal
// frequencies are broken by symbol order.
func New[S Symbol, W Weight](freqs map[S]W) (*Codec[S, W], error) {
	return NewFromEntries(sortedEntries(freqs))
}

// NewFromEntries builds a Codec from a list of symbol frequencies.  Ties
// between equal frequencies are broken by position in entries.
func NewFromEntries[S Symbol, W Weight](entries []Entry[S, W]) (*Codec[S, W], error) {
	root, err := BuildTree(entries)
	if err != nil {
		return nil, err
	}

	codes := GenerateCodes(root)

	var d Decoder[S]
	if err := d.Init(codes); err != nil {
		return nil, err
	}

	symbols := maps.Keys(codes)
	slices.Sort(symbols)

	return &Codec[S, W]{
		root:    root,
		codes:   codes,
		symbols: symbols,
		decoder: d,
	}, nil
}

// Tree returns the root of the Huffman tree.  The tree must not be modified.
func (c *Codec[S, W]) Tree() *Node[S, W] {
	return c.root
}

// CodeTable returns a copy of the mapping from symbol to code.
func (c *Codec[S, W]) CodeTable() map[S]Code {
	return maps.Clone(c.codes)
}

// InverseCodeTable returns a new mapping from code to symbol.
func (c *Codec[S, W]) InverseCodeTable() map[Code]S {
	out := make(map[Code]S, len(c.codes))
	for symbol, hc := range c.codes {
		out[hc] = symbol
	}
	return out
}

// Symbols returns the alphabet in ascending order.
func (c *Codec[S, W]) Symbols() []S {
	return slices.Clone(c.symbols)
}

// Len returns the number of symbols in the alphabet.
func (c *Codec[S, W]) Len() int {
	return len(c.symbols)
}

// Lookup returns the code for symbol, if it has one.
func (c *Codec[S, W]) Lookup(symbol S) (Code, bool) {
	hc, found := c.codes[symbol]
	return hc, found
}

// MinSize is the bit length of the shortest code.
func (c *Codec[S, W]) MinSize() int {
	return c.decoder.MinSize()
}

// MaxSize is the bit length of the longest code.
func (c *Codec[S, W]) MaxSize() int {
	return c.decoder.MaxSize()
}

// Encode concatenates the codes of the symbols in seq.  Nothing else is
// added: no length prefix, no terminator, no padding.
//
// If seq contains a symbol with no code, Encode returns an
// *UnknownSymbolError and no output.
func (c *Codec[S, W]) Encode(seq []S) (Code, error) {
	var sb strings.Builder
	sb.Grow(len(seq) * c.MinSize())
	for index, symbol := range seq {
		hc, found := c.codes[symbol]
		if !found {
			return "", &UnknownSymbolError{Index: index, Symbol: symbol}
		}
		sb.WriteString(string(hc))
	}
	return Code(sb.String()), nil
}

// Decode converts a concatenation of codes back into symbols.
//
// If bits does not end on a code boundary, or contains a bit sequence that no
// code starts with, Decode returns a *MalformedEncodingError.  The symbols
// decoded before the problem are returned alongside the error; they are an
// incomplete result.
func (c *Codec[S, W]) Decode(bits Code) ([]S, error) {
	return c.decoder.Decode(bits)
}

// String returns a short description of this Codec.
func (c *Codec[S, W]) String() string {
	return fmt.Sprintf("(Huffman codec with %d symbols, with coded lengths of %d .. %d bits)",
		len(c.symbols), c.MinSize(), c.MaxSize())
}

// DebugString is like Dump, but returns a string.
func (c *Codec[S, W]) DebugString() string {
	var buf strings.Builder
	_, _ = c.Dump(&buf)
	return buf.String()
}

// Dump writes a programmer-readable debugging dump of the Codec's current
// state to the given writer.
func (c *Codec[S, W]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codec{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", c.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", c.MaxSize())
	fmt.Fprintf(&buf, "\tTree() = %s\n", c.root)
	for _, symbol := range c.symbols {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, c.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Codec[int, int])(nil)
