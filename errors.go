package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("huffman: invalid frequency table")

	// ErrUnknownSymbol is matched by every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrMalformedEncoding is matched by every *MalformedEncodingError.
	ErrMalformedEncoding = errors.New("huffman: malformed encoding")
)

// InvalidInputError is returned when a frequency table cannot be turned into
// a Huffman code.  No partial Codec is produced.
type InvalidInputError struct {
	Reason string
}

func (err *InvalidInputError) Error() string {
	return "huffman: invalid frequency table: " + err.Reason
}

// Is returns true for ErrInvalidInput.
func (err *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnknownSymbolError is returned by Encode when the input contains a symbol
// that has no code.
type UnknownSymbolError struct {
	// Index is the position of the offending symbol in the input.
	Index int

	// Symbol is the offending symbol.
	Symbol interface{}
}

func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: unknown symbol %v at index %d", err.Symbol, err.Index)
}

// Is returns true for ErrUnknownSymbol.
func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// MalformedEncodingError is returned when a bit string cannot be decoded.
//
// If the bit string was truncated, Pending holds the unfinished code that
// starts at Offset, and between MinMissing and MaxMissing further bits would
// have been needed to complete it.  Otherwise Reason describes the problem
// found at Offset.
type MalformedEncodingError struct {
	Offset     int
	Pending    Code
	MinMissing int
	MaxMissing int
	Reason     string
}

func (err *MalformedEncodingError) Error() string {
	if err.Reason != "" {
		return fmt.Sprintf("huffman: malformed encoding at bit %d: %s", err.Offset, err.Reason)
	}
	return fmt.Sprintf("huffman: malformed encoding: truncated code %s at bit %d, need %d .. %d more bits",
		err.Pending, err.Offset, err.MinMissing, err.MaxMissing)
}

// Is returns true for ErrMalformedEncoding.
func (err *MalformedEncodingError) Is(target error) bool {
	return target == ErrMalformedEncoding
}

var (
	_ error = (*InvalidInputError)(nil)
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*MalformedEncodingError)(nil)
)
