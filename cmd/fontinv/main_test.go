// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fontinv/internal/glyph"
	"github.com/pdiddy/fontinv/pkg/types"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, types.ConversionConfig{
		Input:  "font.BIN",
		Output: "font-inv.txt",
		Echo:   true,
	}, cfg.Conversion)
	assert.Equal(t, filepath.Join("catalog", "fonts.db"), cfg.Catalog.Database)
	assert.Equal(t, "catalog", cfg.Catalog.ExportDir)
	assert.Equal(t, 256, cfg.Catalog.MaxResults)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fontinv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`conversion:
  input: glyphs.bin
  echo: false
catalog:
  max_results: 10
`), 0o644))

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "glyphs.bin", cfg.Conversion.Input)
	assert.Equal(t, "font-inv.txt", cfg.Conversion.Output)
	assert.False(t, cfg.Conversion.Echo)
	assert.Equal(t, 10, cfg.Catalog.MaxResults)
}

func TestSelectGlyphs(t *testing.T) {
	all := glyph.Split(make([]byte, 16*20), glyph.GlyphHeight)

	tests := []struct {
		name    string
		args    []string
		want    []int
		wantErr string
	}{
		{name: "all", args: nil, want: seq(20)},
		{name: "decimal and hex", args: []string{"3", "0x10"}, want: []int{3, 16}},
		{name: "out of range", args: []string{"20"}, wantErr: "out of range"},
		{name: "negative", args: []string{"-1"}, wantErr: "out of range"},
		{name: "not a number", args: []string{"A"}, wantErr: "invalid glyph index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectGlyphs(all, tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			idx := make([]int, len(got))
			for i, g := range got {
				idx[i] = g.Index
			}
			assert.Equal(t, tt.want, idx)
		})
	}
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestFormatListOutput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, formatListOutput(&out, nil, false))
	assert.Equal(t, "No glyphs found.\n", out.String())

	out.Reset()
	glyphs := []types.CatalogGlyph{{Source: "font.BIN", Index: 16, Offset: 256, Raw: []byte{0xAB, 0x01}}}
	require.NoError(t, formatListOutput(&out, glyphs, false))
	assert.Contains(t, out.String(), "0x10")
	assert.Contains(t, out.String(), "ab01")
}

func TestRootConvertsFontTable(t *testing.T) {
	t.Chdir(t.TempDir())

	data := make([]byte, 32)
	data[0] = 0x81
	require.NoError(t, os.WriteFile("font.BIN", data, 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	written, err := os.ReadFile("font-inv.txt")
	require.NoError(t, err)
	text := string(written)
	assert.True(t, strings.HasPrefix(text, "\t// character 0x0\n\t0b01111110,\n"))
	assert.Contains(t, text, "\n\n\t// character 0x1\n")

	assert.True(t, strings.HasPrefix(out.String(), "// character 0x0\n0b01111110,\n"))
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "fontinv dev\n", out.String())
}
