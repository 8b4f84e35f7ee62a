package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.Float64("width", 800, "")
	flags.String("title", "", "")
	flags.Bool("stacked", false, "")
	flags.IntSlice("sma", nil, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_Flags(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--width", "640", "--title", "Sales", "--stacked", "--sma", "20,50"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, 640.0, cfg.Width)
	assert.Equal(t, 400.0, cfg.Height)
	assert.Equal(t, "Sales", cfg.Title)
	assert.True(t, cfg.Stacked)
	assert.Equal(t, []int{20, 50}, cfg.SMA)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CHARTKIT_HEIGHT", "300")
	t.Setenv("CHARTKIT_BODY_RATIO", "0.5")

	cfg, err := Load(newFlags())
	require.NoError(t, err)
	assert.Equal(t, 300.0, cfg.Height)
	assert.Equal(t, 0.5, cfg.BodyRatio)
}

func TestLoad_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(file, []byte("width: 1024\ncurve: monotone\nformat: png\n"), 0o600))

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--config", file, "--width", "500"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Width, "flags win over the file")
	assert.Equal(t, "monotone", cfg.Curve)
	assert.Equal(t, FormatPNG, cfg.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}))

	_, err := Load(flags)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"format", func(c *Config) { c.Format = "gif" }},
		{"curve", func(c *Config) { c.Curve = "spline" }},
		{"padding", func(c *Config) { c.Padding = 1 }},
		{"stacked and grouped", func(c *Config) { c.Stacked, c.Grouped = true, true }},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
