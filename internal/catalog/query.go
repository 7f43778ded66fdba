// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/fontinv/pkg/types"
)

// QueryOptions holds filters for glyph listings.
type QueryOptions struct {
	// Source restricts results to one glyph table.
	Source string

	// First and Last bound the glyph index range, inclusive.
	// Last <= 0 means no upper bound.
	First int
	Last  int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

const glyphColumns = `source, glyph_index, byte_offset, raw, inverted, tokens`

// Glyph returns a single glyph, or ErrNotFound.
func (s *Store) Glyph(ctx context.Context, source string, index int) (types.CatalogGlyph, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+glyphColumns+` FROM glyphs WHERE source = ? AND glyph_index = ?`,
		source, index)

	g, err := scanGlyph(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.CatalogGlyph{}, fmt.Errorf("%s glyph %#x: %w", source, index, ErrNotFound)
	}
	if err != nil {
		return types.CatalogGlyph{}, fmt.Errorf("querying %s glyph %#x: %w", source, index, err)
	}
	return g, nil
}

// List returns glyphs matching opts ordered by source and index.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.CatalogGlyph, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT ` + glyphColumns + ` FROM glyphs WHERE glyph_index >= ?`)
	args = append(args, opts.First)

	if opts.Last > 0 {
		qb.WriteString(` AND glyph_index <= ?`)
		args = append(args, opts.Last)
	}
	if opts.Source != "" {
		qb.WriteString(` AND source = ?`)
		args = append(args, opts.Source)
	}
	qb.WriteString(` ORDER BY source, glyph_index LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying glyphs: %w", err)
	}
	defer rows.Close()

	var glyphs []types.CatalogGlyph
	for rows.Next() {
		g, err := scanGlyph(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning glyph: %w", err)
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGlyph(sc scanner) (types.CatalogGlyph, error) {
	var (
		g      types.CatalogGlyph
		tokens string
	)
	if err := sc.Scan(&g.Source, &g.Index, &g.Offset, &g.Raw, &g.Inverted, &tokens); err != nil {
		return types.CatalogGlyph{}, err
	}
	if err := json.Unmarshal([]byte(tokens), &g.Tokens); err != nil {
		return types.CatalogGlyph{}, fmt.Errorf("decoding tokens: %w", err)
	}
	return g, nil
}
