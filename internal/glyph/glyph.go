// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package glyph partitions bitmap font tables into glyph records and
// implements the per-row transform used by the converter: bit order
// reversed, then polarity inverted.
package glyph

import (
	"fmt"
	"math/bits"

	"github.com/pdiddy/fontinv/pkg/types"
)

// GlyphHeight is the number of one-byte rows in each glyph of the tables
// this tool reads.
const GlyphHeight = 0x10

// Split partitions data into glyph records of height bytes in stream order.
// The last record is short when len(data) is not a multiple of height; no
// padding is added. Rows alias data.
func Split(data []byte, height int) []types.Glyph {
	if height <= 0 || len(data) == 0 {
		return nil
	}
	glyphs := make([]types.Glyph, 0, (len(data)+height-1)/height)
	for off := 0; off < len(data); off += height {
		end := min(off+height, len(data))
		glyphs = append(glyphs, types.Glyph{
			Index:  off / height,
			Offset: off,
			Rows:   data[off:end:end],
		})
	}
	return glyphs
}

// Invert mirrors the row left to right and flips every pixel.
// Invert(Invert(b)) == b.
func Invert(b byte) byte {
	return ^bits.Reverse8(b)
}

// InvertRows applies Invert to each row and returns a new slice.
func InvertRows(rows []byte) []byte {
	out := make([]byte, len(rows))
	for i, r := range rows {
		out[i] = Invert(r)
	}
	return out
}

// Token renders a row as a bit literal of its inverted form, e.g.
// 0x00 -> "0b11111111,".
func Token(b byte) string {
	return fmt.Sprintf("0b%08b,", Invert(b))
}

// Tokens returns Token for every row.
func Tokens(rows []byte) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = Token(r)
	}
	return out
}

// Label returns the comment line that introduces glyph index.
func Label(index int) string {
	return fmt.Sprintf("// character %#x", index)
}
