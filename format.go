package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// TableRow is one line of a formatted code table.
type TableRow[S Symbol] struct {
	Symbol S
	Code   Code
}

// FormatCodeTable returns the code table of c sorted by symbol.  If limit is
// positive, at most limit rows are returned, and truncated reports whether
// any rows were left out.  A limit of 0 means no limit.
func FormatCodeTable[S Symbol, W Weight](c *Codec[S, W], limit int) (rows []TableRow[S], truncated bool) {
	n := len(c.symbols)
	if limit > 0 && limit < n {
		n = limit
		truncated = true
	}
	rows = make([]TableRow[S], n)
	for i := 0; i < n; i++ {
		symbol := c.symbols[i]
		rows[i] = TableRow[S]{symbol, c.codes[symbol]}
	}
	return rows, truncated
}

// WriteCodeTable writes the output of FormatCodeTable to w, one "symbol: code"
// line per row, followed by a "..." line if rows were left out.
func WriteCodeTable[S Symbol, W Weight](w io.Writer, c *Codec[S, W], limit int) (int64, error) {
	rows, truncated := FormatCodeTable(c, limit)
	var buf bytes.Buffer
	for _, row := range rows {
		fmt.Fprintf(&buf, "%4v: %s\n", row.Symbol, string(row.Code))
	}
	if truncated {
		buf.WriteString("...\n")
	}
	return buf.WriteTo(w)
}
