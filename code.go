package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits.  Each byte of the underlying string is
// either '0' or '1', and the first byte is the first bit.
//
// Code is used both for the code of a single Symbol and for the
// concatenation of many codes produced by Codec.Encode.
type Code string

// ParseCode converts a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	for i := 0; i < len(str); i++ {
		if ch := str[i]; ch != '0' && ch != '1' {
			return "", &MalformedEncodingError{
				Offset: i,
				Reason: fmt.Sprintf("invalid bit %q", ch),
			}
		}
	}
	return Code(str), nil
}

// MakeCode constructs a Code from a slice of bits, where each element of bits
// is either 0 or 1.
func MakeCode(bits ...byte) Code {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, bit := range bits {
		sb.WriteByte('0' + (bit & 1))
	}
	return Code(sb.String())
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the i'th bit of this Code as 0 or 1.
func (hc Code) Bit(i int) byte {
	return hc[i] - '0'
}

// Append returns a new Code with bit appended.
func (hc Code) Append(bit byte) Code {
	return hc + Code([]byte{'0' + (bit & 1)})
}

// HasPrefix reports whether prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
