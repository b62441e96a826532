package huffman

import (
	"golang.org/x/exp/constraints"
)

// Symbol is the set of types usable as symbols in an alphabet.  Symbols must
// be ordered so that code tables can be presented in symbol order.
type Symbol interface {
	constraints.Ordered
}

// Weight is the set of types usable as symbol frequencies.  Weights must be
// non-negative; floating-point weights must not be NaN.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Entry pairs a Symbol with its Weight.  A slice of Entry values is a
// frequency table whose order is significant: it is the insertion order used
// to break ties while building the tree.
type Entry[S Symbol, W Weight] struct {
	Symbol S
	Weight W
}

// MakeEntry is a convenience function that constructs an Entry.
func MakeEntry[S Symbol, W Weight](symbol S, weight W) Entry[S, W] {
	return Entry[S, W]{Symbol: symbol, Weight: weight}
}

// CountFrequencies returns the number of occurrences of each distinct symbol
// in seq, in order of first appearance.
func CountFrequencies[S Symbol](seq []S) []Entry[S, int] {
	index := make(map[S]int, 16)
	out := make([]Entry[S, int], 0, 16)
	for _, symbol := range seq {
		if i, found := index[symbol]; found {
			out[i].Weight++
			continue
		}
		index[symbol] = len(out)
		out = append(out, Entry[S, int]{symbol, 1})
	}
	return out
}
