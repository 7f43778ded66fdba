// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fontinv/internal/catalog"
	"github.com/pdiddy/fontinv/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the SQLite glyph catalog (store, list, export)",
	Long: `Catalog keeps converted glyph tables in a local SQLite database so single
glyphs can be looked up and exported without re-reading the binary table.`,
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest the configured glyph table into the catalog",
	Long: `Store reads the configured glyph table and records every glyph, its
inverted rows, and the emitted bit literals. Storing the same table again
replaces its previous rows.`,
	Args: cobra.NoArgs,
	RunE: runCatalogStore,
}

func runCatalogStore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Conversion.Input)
	if err != nil {
		return fmt.Errorf("reading glyph table %s: %w", cfg.Conversion.Input, err)
	}

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Ingest(ctxOf(cmd), cfg.Conversion.Input, data, cmd.OutOrStdout())
	return err
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog glyphs with their bit literals",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	glyphs, err := store.List(ctxOf(cmd), queryOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatListOutput(cmd.OutOrStdout(), glyphs, jsonOutput)
}

func formatListOutput(w io.Writer, glyphs []types.CatalogGlyph, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(glyphs)
	}

	if len(glyphs) == 0 {
		fmt.Fprintln(w, "No glyphs found.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-6s  %-6s  %s\n", "Source", "Glyph", "Offset", "Rows")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, g := range glyphs {
		fmt.Fprintf(w, "%-20s  %-6s  %-6d  %x\n", g.Source, fmt.Sprintf("%#x", g.Index), g.Offset, g.Raw)
	}
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export catalog glyphs to YAML or JSON",
	Long: `Export writes catalog glyphs to export.yaml or export.json in the
configured export directory. Supports the same filters as list.`,
	Args: cobra.NoArgs,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd)
	format, _ := cmd.Flags().GetString("format")

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(ctxOf(cmd), opts)
	case "json":
		path, err = store.ExportJSON(ctxOf(cmd), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Exported to", path)
	return nil
}

func queryOptsFromFlags(cmd *cobra.Command) catalog.QueryOptions {
	source, _ := cmd.Flags().GetString("source")
	first, _ := cmd.Flags().GetInt("from")
	last, _ := cmd.Flags().GetInt("to")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Source:     source,
		First:      first,
		Last:       last,
		MaxResults: limit,
	}
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	for _, c := range []*cobra.Command{catalogListCmd, catalogExportCmd} {
		c.Flags().String("source", "", "filter by source table path")
		c.Flags().Int("from", 0, "first glyph index")
		c.Flags().Int("to", 0, "last glyph index (0 = no upper bound)")
		c.Flags().Int("limit", 0, "maximum glyphs (0 = use default)")
	}
	catalogListCmd.Flags().Bool("json", false, "output results as JSON")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
