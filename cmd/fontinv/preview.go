// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fontinv/internal/glyph"
	"github.com/pdiddy/fontinv/internal/preview"
	"github.com/pdiddy/fontinv/pkg/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview [index...]",
	Short: "Draw glyphs from the table as ASCII art",
	Long: `Preview draws glyphs from the configured glyph table, one text row per
pixel row. Indices may be decimal or 0x-prefixed hex; with no indices every
glyph is drawn. Use --inverted to see the rows exactly as convert emits them.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Conversion.Input)
	if err != nil {
		return fmt.Errorf("reading glyph table %s: %w", cfg.Conversion.Input, err)
	}
	all := glyph.Split(data, glyph.GlyphHeight)

	selected, err := selectGlyphs(all, args)
	if err != nil {
		return err
	}

	inverted, _ := cmd.Flags().GetBool("inverted")
	return preview.RenderAll(cmd.OutOrStdout(), selected, preview.Options{Inverted: inverted})
}

// selectGlyphs picks the glyphs named by args, in argument order.
func selectGlyphs(all []types.Glyph, args []string) ([]types.Glyph, error) {
	if len(args) == 0 {
		return all, nil
	}
	selected := make([]types.Glyph, 0, len(args))
	for _, a := range args {
		idx, err := strconv.ParseInt(a, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("invalid glyph index %q: %w", a, err)
		}
		if idx < 0 || int(idx) >= len(all) {
			return nil, fmt.Errorf("glyph index %s out of range (table has %d glyphs)", a, len(all))
		}
		selected = append(selected, all[idx])
	}
	return selected, nil
}

func init() {
	previewCmd.Flags().Bool("inverted", false, "draw rows mirrored and inverted, as convert emits them")

	rootCmd.AddCommand(previewCmd)
}
