// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionConfig holds settings for the glyph table conversion.
type ConversionConfig struct {
	// Input is the binary glyph table to read (default "font.BIN").
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Output is the text file to create or overwrite (default "font-inv.txt").
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Echo mirrors the converted lines to the console.
	Echo bool `json:"echo" yaml:"echo" mapstructure:"echo"`
}

// CatalogConfig holds settings for the SQLite glyph catalog.
type CatalogConfig struct {
	// Database is the path to the SQLite file (default "catalog/fonts.db").
	Database string `json:"database" yaml:"database" mapstructure:"database"`

	// ExportDir is where export.yaml and export.json are written (default "catalog").
	ExportDir string `json:"export_dir" yaml:"export_dir" mapstructure:"export_dir"`

	// MaxResults is the default maximum number of glyphs returned by a listing (default 256).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all settings loaded from fontinv.yaml and the environment.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
}
