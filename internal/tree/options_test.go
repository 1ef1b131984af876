package tree

import (
	"testing"

	"github.com/harrison/assetkit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 50, opts.MaxPerExtension)
	assert.False(t, opts.Color)
	assert.Contains(t, opts.IgnoreFolders, ".git")
	assert.Contains(t, opts.IgnoreFolders, "node_modules")
	assert.NotNil(t, opts.Palette.Directory)
	assert.NotNil(t, opts.Palette.Omitted)
}

func TestPaletteForFile(t *testing.T) {
	opts := DefaultOptions()

	assert.Same(t, opts.Palette.Extensions[".py"], opts.Palette.ForFile(".py"))
	assert.Same(t, opts.Palette.Default, opts.Palette.ForFile(".unknown"))
	assert.Same(t, opts.Palette.Default, opts.Palette.ForFile(""))
}

func TestOptionsFromConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.TreeConfig)
	}{
		{"zero cap", func(c *config.TreeConfig) { c.MaxPerExtension = 0 }},
		{"bad extension color", func(c *config.TreeConfig) { c.Colors[".go"] = "plaid" }},
		{"bad default color", func(c *config.TreeConfig) { c.DefaultColor = "" }},
		{"bad directory color", func(c *config.TreeConfig) { c.DirectoryColor = "nope" }},
		{"bad omitted color", func(c *config.TreeConfig) { c.OmittedColor = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig().Tree
			tt.mutate(&cfg)
			_, err := OptionsFromConfig(cfg, true)
			assert.Error(t, err)
		})
	}
}

func TestOptionsFromConfigCopiesIgnoreList(t *testing.T) {
	cfg := config.DefaultConfig().Tree
	opts, err := OptionsFromConfig(cfg, true)
	require.NoError(t, err)

	cfg.IgnoreFolders[0] = "changed"
	assert.Equal(t, ".git", opts.IgnoreFolders[0])
	assert.True(t, opts.Color)
}
