// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fontinv CLI. Run with no
// arguments it converts font.BIN into font-inv.txt in the working
// directory; subcommands preview glyphs and manage the glyph catalog.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fontinv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the fontinv CLI.
var rootCmd = &cobra.Command{
	Use:   "fontinv",
	Short: "Convert a bitmap font table into inverted bit-literal rows",
	Long: `fontinv reads a binary glyph table (16 bytes per glyph, one byte per
pixel row) and writes each glyph as a commented block of bit literals with
the row mirrored and its polarity inverted, ready to paste into a C array.

Run without a subcommand to convert font.BIN into font-inv.txt. File
locations can be changed in fontinv.yaml or with FONTINV_* variables.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./fontinv.yaml or ~/.config/fontinv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fontinv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fontinv"))
		}
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("FONTINV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("conversion.input", "font.BIN")
	v.SetDefault("conversion.output", "font-inv.txt")
	v.SetDefault("conversion.echo", true)
	v.SetDefault("catalog.database", filepath.Join("catalog", "fonts.db"))
	v.SetDefault("catalog.export_dir", "catalog")
	v.SetDefault("catalog.max_results", 256)
}

// loadConfig decodes the settings held by v.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
