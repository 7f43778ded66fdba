// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists converted glyph tables in a SQLite database so
// individual glyphs can be looked up, listed, and exported.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/fontinv/internal/glyph"
	"github.com/pdiddy/fontinv/pkg/types"
)

const defaultMaxResults = 256

// ErrNotFound is returned when a requested glyph is not in the catalog.
var ErrNotFound = errors.New("glyph not found")

// Store manages the glyph catalog database.
type Store struct {
	db         *sql.DB
	exportDir  string
	maxResults int
}

// NewStore opens or creates the catalog database at cfg.Database and
// creates the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Database); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Database+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		exportDir:  cfg.ExportDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS fonts (
			source TEXT PRIMARY KEY,
			size INTEGER NOT NULL,
			glyphs INTEGER NOT NULL,
			ingested_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS glyphs (
			source TEXT NOT NULL REFERENCES fonts(source) ON DELETE CASCADE,
			glyph_index INTEGER NOT NULL,
			byte_offset INTEGER NOT NULL,
			raw BLOB NOT NULL,
			inverted BLOB NOT NULL,
			tokens TEXT NOT NULL,
			PRIMARY KEY (source, glyph_index)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingest run.
type IngestSummary struct {
	Glyphs  int
	Bytes   int
	Updated bool
}

// Ingest splits data into glyphs and stores them under source, replacing
// any rows previously stored for that source. All rows are written in one
// transaction.
func (s *Store) Ingest(ctx context.Context, source string, data []byte, w io.Writer) (IngestSummary, error) {
	glyphs := glyph.Split(data, glyph.GlyphHeight)
	summary := IngestSummary{Glyphs: len(glyphs), Bytes: len(data)}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRowContext(ctx,
		`SELECT count(*) FROM fonts WHERE source = ?`, source,
	).Scan(&existing); err != nil {
		return IngestSummary{}, fmt.Errorf("checking font %s: %w", source, err)
	}
	summary.Updated = existing > 0

	if _, err := tx.ExecContext(ctx, `DELETE FROM glyphs WHERE source = ?`, source); err != nil {
		return IngestSummary{}, fmt.Errorf("clearing glyphs for %s: %w", source, err)
	}

	ts := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO fonts (source, size, glyphs, ingested_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET size = excluded.size,
			glyphs = excluded.glyphs, ingested_at = excluded.ingested_at`,
		source, len(data), len(glyphs), ts,
	); err != nil {
		return IngestSummary{}, fmt.Errorf("recording font %s: %w", source, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO glyphs (source, glyph_index, byte_offset, raw, inverted, tokens)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing glyph insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range glyphs {
		select {
		case <-ctx.Done():
			return IngestSummary{}, ctx.Err()
		default:
		}

		tokens, _ := json.Marshal(glyph.Tokens(g.Rows))
		if _, err := stmt.ExecContext(ctx,
			source, g.Index, g.Offset, g.Rows, glyph.InvertRows(g.Rows), string(tokens),
		); err != nil {
			return IngestSummary{}, fmt.Errorf("inserting glyph %d: %w", g.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing %s: %w", source, err)
	}

	verb := "indexed"
	if summary.Updated {
		verb = "updated"
	}
	fmt.Fprintf(w, "%s %s (%d glyphs, %d bytes)\n", verb, source, summary.Glyphs, summary.Bytes)
	return summary, nil
}

// Fonts returns every ingested table, ordered by source.
func (s *Store) Fonts(ctx context.Context) ([]types.CatalogFont, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source, size, glyphs, ingested_at FROM fonts ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("querying fonts: %w", err)
	}
	defer rows.Close()

	var fonts []types.CatalogFont
	for rows.Next() {
		var (
			f  types.CatalogFont
			ts string
		)
		if err := rows.Scan(&f.Source, &f.Size, &f.Glyphs, &ts); err != nil {
			return nil, fmt.Errorf("scanning font: %w", err)
		}
		f.IngestedAt, _ = time.Parse(time.RFC3339Nano, ts)
		fonts = append(fonts, f)
	}
	return fonts, rows.Err()
}
