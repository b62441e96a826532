package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Decoder implements a decoder for prefix-free codes.
//
// A Decoder maps every code to its symbol, and also records every proper
// prefix of every code, along with the shortest and longest codes that extend it.  This
// lets Decode report exactly how many bits are missing from a truncated
// input, and reject bits that no code can start with as soon as they are
// seen.
type Decoder[S Symbol] struct {
	table   map[Code]decoderData[S]
	minSize int
	maxSize int
}

// Init initializes this Decoder from a prefix-free code table.  It returns an
// *InvalidInputError if the table is empty, contains an empty code, or is not
// prefix-free.
func (d *Decoder[S]) Init(codes map[S]Code) error {
	if len(codes) == 0 {
		return &InvalidInputError{Reason: "empty code table"}
	}

	table := make(map[Code]decoderData[S], prefixTableSize(len(codes)))
	var minSize, maxSize int
	first := true
	for symbol, hc := range codes {
		size := hc.Size()
		if size == 0 {
			return &InvalidInputError{Reason: fmt.Sprintf("symbol %v has an empty code", symbol)}
		}
		if dd, found := table[hc]; found {
			if dd.valid {
				return &InvalidInputError{Reason: fmt.Sprintf("symbols %v and %v share code %s", dd.symbol, symbol, hc)}
			}
			return &InvalidInputError{Reason: fmt.Sprintf("code %s for symbol %v is a prefix of another code", hc, symbol)}
		}
		if err := fillTable(table, symbol, hc); err != nil {
			return err
		}

		if first {
			first = false
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	*d = Decoder[S]{
		table:   table,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Lookup looks up a possibly partial code.
//
// If hc is a complete code, valid is true, symbol is its Symbol, and
// minSize == maxSize == hc.Size().
//
// If hc is a proper prefix of one or more codes, valid is false, and the
// codes that extend hc are between minSize and maxSize bits long.
//
// If no code starts with hc, valid is false and minSize == maxSize == 0.
func (d Decoder[S]) Lookup(hc Code) (symbol S, valid bool, minSize int, maxSize int) {
	dd, found := d.table[hc]
	if !found {
		return symbol, false, 0, 0
	}
	return dd.symbol, dd.valid, dd.minSize, dd.maxSize
}

// Decode decodes a concatenation of codes into the corresponding symbols.
//
// On failure, Decode returns the symbols decoded before the bad position
// together with a *MalformedEncodingError.  That slice is incomplete and must
// not be mistaken for the decoding of bits.
func (d Decoder[S]) Decode(bits Code) ([]S, error) {
	out := make([]S, 0, len(bits)/maxInt(d.minSize, 1))
	start := 0
	for i := 0; i < len(bits); i++ {
		if ch := bits[i]; ch != '0' && ch != '1' {
			return out, &MalformedEncodingError{Offset: i, Reason: fmt.Sprintf("invalid bit %q", ch)}
		}

		dd, found := d.table[bits[start:i+1]]
		if !found {
			return out, &MalformedEncodingError{
				Offset: start,
				Reason: fmt.Sprintf("no code begins with %s", bits[start:i+1]),
			}
		}
		if dd.valid {
			out = append(out, dd.symbol)
			start = i + 1
		}
	}

	if start < len(bits) {
		pending := bits[start:]
		dd := d.table[pending]
		return out, &MalformedEncodingError{
			Offset:     start,
			Pending:    pending,
			MinMissing: dd.minSize - pending.Size(),
			MaxMissing: dd.maxSize - pending.Size(),
		}
	}
	return out, nil
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder[S]) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder[S]) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.valid {
			fmt.Fprintf(&buf, "\tLookup(%s) = {%v, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tLookup(%s) = {-, %d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData[S Symbol] struct {
	symbol  S
	valid   bool
	minSize int
	maxSize int
}

// fillTable records hc as the code for symbol, then widens the size range of
// every proper prefix of hc so that it covers hc.Size().
func fillTable[S Symbol](table map[Code]decoderData[S], symbol S, hc Code) error {
	size := hc.Size()
	table[hc] = decoderData[S]{symbol: symbol, valid: true, minSize: size, maxSize: size}

	for i := size - 1; i >= 0; i-- {
		prefix := hc[:i]
		dd, found := table[prefix]
		if found && dd.valid {
			return &InvalidInputError{Reason: fmt.Sprintf("code %s for symbol %v is a prefix of code %s", prefix, dd.symbol, hc)}
		}

		// If table[prefix] already covers size, so does every shorter
		// prefix, and we can stop.

		if found && dd.minSize <= size && dd.maxSize >= size {
			break
		}
		if !found {
			dd = decoderData[S]{minSize: size, maxSize: size}
		} else if dd.minSize > size {
			dd.minSize = size
		} else if dd.maxSize < size {
			dd.maxSize = size
		}
		table[prefix] = dd
	}

	assert.Assertf(table[""].minSize <= size && table[""].maxSize >= size, "root prefix range does not cover %s", hc)
	return nil
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
