package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Pack stores bits eight to a byte, first bit in the most significant
// position.  The last byte is padded with zero bits; the caller must keep
// bits.Size() to undo the padding with Unpack.
func Pack(bits Code) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	if err := WritePacked(&buf, bits); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePacked writes the packed form of bits to w.
func WritePacked(w io.Writer, bits Code) error {
	bw := bitio.NewWriter(w)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			bw.TryWriteBool(false)
		case '1':
			bw.TryWriteBool(true)
		default:
			return &MalformedEncodingError{Offset: i, Reason: fmt.Sprintf("invalid bit %q", bits[i])}
		}
	}
	if bw.TryError != nil {
		return bw.TryError
	}
	return bw.Close()
}

// Unpack reverses Pack, returning the first size bits of data.
func Unpack(data []byte, size int) (Code, error) {
	if size < 0 || size > 8*len(data) {
		return "", &MalformedEncodingError{
			Offset: 8 * len(data),
			Reason: fmt.Sprintf("want %d bits, have %d", size, 8*len(data)),
		}
	}
	out := make([]byte, size)
	r := bitio.NewReader(bytes.NewReader(data))
	for i := 0; i < size; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		out[i] = '0'
		if bit {
			out[i] = '1'
		}
	}
	return Code(out), nil
}
