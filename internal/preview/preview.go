// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview draws glyph bitmaps as ASCII art for visual inspection
// of a font table.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/yyyoichi/bitstream-go"

	"github.com/pdiddy/fontinv/internal/glyph"
	"github.com/pdiddy/fontinv/pkg/types"
)

const rowWidth = 8

// Options controls how glyph pixels are drawn.
type Options struct {
	// Inverted draws the rows as the converter emits them (mirrored and
	// polarity flipped) instead of the raw table bits.
	Inverted bool

	// On and Off are the cell characters for set and clear pixels.
	// They default to '#' and '.'.
	On, Off byte
}

func (o Options) cells() (on, off byte) {
	on, off = o.On, o.Off
	if on == 0 {
		on = '#'
	}
	if off == 0 {
		off = '.'
	}
	return on, off
}

// Render returns the glyph label followed by one line of cells per row,
// leftmost pixel first.
func Render(g types.Glyph, opts Options) string {
	rows := g.Rows
	if opts.Inverted {
		rows = glyph.InvertRows(rows)
	}

	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, r := range rows {
		w.Write8(0, rowWidth, r)
	}
	reader := bitstream.NewBitReader(w.Data(), 0, 0)

	on, off := opts.cells()
	var b strings.Builder
	b.WriteString(glyph.Label(g.Index))
	b.WriteByte('\n')
	line := make([]byte, rowWidth)
	for row := range rows {
		for col := range line {
			set, _ := reader.ReadBitAt(row*rowWidth + col)
			if set {
				line[col] = on
			} else {
				line[col] = off
			}
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderAll writes every glyph to w, separated by blank lines.
func RenderAll(w io.Writer, glyphs []types.Glyph, opts Options) error {
	for i, g := range glyphs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, Render(g, opts)); err != nil {
			return fmt.Errorf("rendering glyph %d: %w", g.Index, err)
		}
	}
	return nil
}
