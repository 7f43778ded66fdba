// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/fontinv/internal/glyph"
	"github.com/pdiddy/fontinv/pkg/types"
)

// Result holds the outcome of a file conversion.
type Result struct {
	Glyphs int
	Bytes  int
	Lines  int
}

// ConvertFile reads cfg.Input in full, converts it with glyph.GlyphHeight
// rows per glyph, and writes the text to cfg.Output, creating or truncating
// it. When cfg.Echo is set and echo is non-nil the same lines are mirrored
// to echo. A one-line status is printed to log.
func ConvertFile(cfg types.ConversionConfig, echo, log io.Writer) (Result, error) {
	data, err := readInput(cfg.Input)
	if err != nil {
		return Result{}, err
	}

	doc := Convert(data, glyph.GlyphHeight)

	if err := writeOutput(cfg.Output, doc); err != nil {
		return Result{}, err
	}

	if cfg.Echo && echo != nil {
		if err := doc.Echo(echo); err != nil {
			return Result{}, fmt.Errorf("echoing %s: %w", cfg.Output, err)
		}
	}

	res := Result{Glyphs: doc.Glyphs, Bytes: doc.Bytes, Lines: len(doc.Lines)}
	fmt.Fprintf(log, "converted: %s -> %s (%d glyphs, %d bytes)\n",
		cfg.Input, cfg.Output, res.Glyphs, res.Bytes)
	return res, nil
}

func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening glyph table %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading glyph table %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(path string, doc Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
