package huffman

import (
	mathbits "math/bits"
)

// prefixTableSize estimates the number of entries in a Decoder's prefix table
// for a code with numSymbols symbols.  A balanced code has about n×log2(n)
// prefixes.
func prefixTableSize(numSymbols int) int {
	if numSymbols <= 1 {
		return 2
	}
	return numSymbols * mathbits.Len(uint(numSymbols))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
