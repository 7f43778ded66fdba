// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a bitmap glyph table into annotated bit-literal
// text. The conversion itself works on in-memory buffers and yields a
// Document; callers decide where the Document is written.
package convert

import (
	"bufio"
	"io"
	"strings"

	"github.com/pdiddy/fontinv/internal/glyph"
)

// LineKind distinguishes the three kinds of output line.
type LineKind int

const (
	// LineLabel names the glyph whose rows follow.
	LineLabel LineKind = iota
	// LineData holds one transformed row token.
	LineData
	// LineSeparator is the blank line between glyphs.
	LineSeparator
)

// Line is one output line without indentation or newline.
type Line struct {
	Kind LineKind
	Text string
}

// Document is the result of converting one glyph table.
type Document struct {
	Lines  []Line
	Glyphs int
	Bytes  int
}

// Convert partitions data into records of height bytes and renders each
// record as a label line followed by one data line per row. Records are
// separated by a blank line. A short trailing record is rendered as is.
func Convert(data []byte, height int) Document {
	glyphs := glyph.Split(data, height)
	doc := Document{
		Lines:  make([]Line, 0, len(data)+2*len(glyphs)),
		Glyphs: len(glyphs),
		Bytes:  len(data),
	}
	for _, g := range glyphs {
		if g.Offset != 0 {
			doc.Lines = append(doc.Lines, Line{Kind: LineSeparator})
		}
		doc.Lines = append(doc.Lines, Line{Kind: LineLabel, Text: glyph.Label(g.Index)})
		for _, row := range g.Rows {
			doc.Lines = append(doc.Lines, Line{Kind: LineData, Text: glyph.Token(row)})
		}
	}
	return doc
}

// WriteTo writes the persisted form of the document: label and data lines
// indented by one tab, separators as bare newlines.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range d.Lines {
		var s string
		if l.Kind == LineSeparator {
			s = "\n"
		} else {
			s = "\t" + l.Text + "\n"
		}
		m, err := bw.WriteString(s)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// String returns the persisted form of the document.
func (d Document) String() string {
	var b strings.Builder
	d.WriteTo(&b)
	return b.String()
}

// Echo writes the console form of the document: every line unindented,
// one per output line.
func (d Document) Echo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, l := range d.Lines {
		if _, err := bw.WriteString(l.Text + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
