// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fontinv/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the glyph table into inverted bit-literal rows",
	Long: `Convert reads the configured glyph table (default font.BIN), mirrors and
inverts every row, and writes the result to the configured text file
(default font-inv.txt), echoing each line to stdout. This is what fontinv
does when run without a subcommand.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	_, err = convert.ConvertFile(cfg.Conversion, cmd.OutOrStdout(), os.Stderr)
	return err
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
