// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glyph

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{0x00, "0b11111111,"},
		{0xFF, "0b00000000,"},
		{0x81, "0b01111110,"},
		{0x80, "0b11111110,"},
		{0x01, "0b01111111,"},
		{0x0F, "0b00001111,"},
		{0x3C, "0b11000011,"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#02x", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, Token(tt.in))
		})
	}
}

// reference builds the token by string manipulation: render, reverse, swap digits.
func reference(b byte) string {
	s := []byte(fmt.Sprintf("%08b", b))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	for i, c := range s {
		if c == '0' {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return "0b" + string(s) + ","
}

func TestTokenAllBytes(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		require.Equal(t, reference(b), Token(b), "byte %#02x", b)
	}
}

func TestInvertIsInvolution(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		require.Equal(t, b, Invert(Invert(b)), "byte %#02x", b)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "// character 0x0", Label(0))
	assert.Equal(t, "// character 0x1", Label(1))
	assert.Equal(t, "// character 0xf", Label(15))
	assert.Equal(t, "// character 0x10", Label(16))
	assert.Equal(t, "// character 0xff", Label(255))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		wantLens []int
	}{
		{name: "empty", size: 0, wantLens: nil},
		{name: "one partial", size: 5, wantLens: []int{5}},
		{name: "exact", size: 32, wantLens: []int{16, 16}},
		{name: "trailing partial", size: 20, wantLens: []int{16, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, tt.size)
			for i := range data {
				data[i] = byte(i)
			}
			glyphs := Split(data, GlyphHeight)
			require.Len(t, glyphs, len(tt.wantLens))
			for i, g := range glyphs {
				assert.Equal(t, i, g.Index)
				assert.Equal(t, i*GlyphHeight, g.Offset)
				assert.Len(t, g.Rows, tt.wantLens[i])
				assert.Equal(t, byte(g.Offset), g.Rows[0])
			}
		})
	}
}

func TestSplitRowsDoNotGrowIntoNextGlyph(t *testing.T) {
	data := make([]byte, 32)
	glyphs := Split(data, GlyphHeight)
	require.Len(t, glyphs, 2)

	rows := append(glyphs[0].Rows, 0xAA)
	assert.Len(t, rows, 17)
	assert.Equal(t, byte(0), glyphs[1].Rows[0], "append must not overwrite the next glyph")
}

func TestTokens(t *testing.T) {
	got := Tokens([]byte{0x00, 0xFF})
	assert.Equal(t, "0b11111111, 0b00000000,", strings.Join(got, " "))
	assert.Equal(t, []byte{0xFF, 0x00, 0x7E}, InvertRows([]byte{0x00, 0xFF, 0x81}))
}
