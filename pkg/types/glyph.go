// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Glyph is one record of a bitmap font table: one byte per pixel row,
// eight pixels per row, most significant bit leftmost.
type Glyph struct {
	// Index is the glyph number, i.e. Offset divided by the record height.
	Index int `json:"index" yaml:"index"`

	// Offset is the byte position of the first row in the source table.
	Offset int `json:"offset" yaml:"offset"`

	// Rows holds the row bitmaps. The last glyph of a table may be short.
	Rows []byte `json:"rows" yaml:"rows"`
}

// CatalogGlyph is a glyph as stored in the catalog, with its source table
// and the transformed rows that the converter emits.
type CatalogGlyph struct {
	Source   string   `json:"source" yaml:"source"`
	Index    int      `json:"index" yaml:"index"`
	Offset   int      `json:"offset" yaml:"offset"`
	Raw      []byte   `json:"raw" yaml:"raw"`
	Inverted []byte   `json:"inverted" yaml:"inverted"`
	Tokens   []string `json:"tokens" yaml:"tokens"`
}

// CatalogFont summarizes one ingested glyph table.
type CatalogFont struct {
	Source     string    `json:"source" yaml:"source"`
	Size       int       `json:"size" yaml:"size"`
	Glyphs     int       `json:"glyphs" yaml:"glyphs"`
	IngestedAt time.Time `json:"ingested_at" yaml:"ingested_at"`
}
