// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportEntry is one glyph as written to export files. Rows are rendered
// as hex strings so the export stays readable.
type ExportEntry struct {
	Source   string   `json:"source" yaml:"source"`
	Index    int      `json:"index" yaml:"index"`
	Offset   int      `json:"offset" yaml:"offset"`
	Raw      []string `json:"raw" yaml:"raw,flow"`
	Inverted []string `json:"inverted" yaml:"inverted,flow"`
	Tokens   []string `json:"tokens" yaml:"tokens"`
}

const exportLimit = 1 << 20

// ExportYAML writes the matching glyphs to export.yaml in the export
// directory and returns the path written.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return s.writeExport("export.yaml", data)
}

// ExportJSON writes the matching glyphs to export.json in the export
// directory and returns the path written.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return s.writeExport("export.json", data)
}

func (s *Store) writeExport(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(s.exportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	glyphs, err := s.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(glyphs))
	for i, g := range glyphs {
		entries[i] = ExportEntry{
			Source:   g.Source,
			Index:    g.Index,
			Offset:   g.Offset,
			Raw:      hexRows(g.Raw),
			Inverted: hexRows(g.Inverted),
			Tokens:   g.Tokens,
		}
	}
	return entries, nil
}

func hexRows(rows []byte) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = fmt.Sprintf("%02x", r)
	}
	return out
}
