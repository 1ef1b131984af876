package tree

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harrison/assetkit/internal/config"
	"github.com/harrison/assetkit/internal/display"
)

// Palette maps entry kinds to terminal colors.
type Palette struct {
	// Extensions maps lowercased extensions (".py") to colors
	Extensions map[string]*color.Color
	Default    *color.Color
	Directory  *color.Color
	Omitted    *color.Color
}

// ForFile returns the color for a file with the given lowercased extension.
func (p Palette) ForFile(ext string) *color.Color {
	if c, ok := p.Extensions[ext]; ok {
		return c
	}
	return p.Default
}

// Options configures a Printer. Options are read-only once handed to NewPrinter.
type Options struct {
	// IgnoreFolders are directory names skipped along with their contents
	IgnoreFolders []string
	// MaxPerExtension caps the files listed per extension within one directory
	MaxPerExtension int
	Palette         Palette
	// Color enables ANSI color codes in the output
	Color bool
}

// OptionsFromConfig builds printer options from the tree section of the configuration.
func OptionsFromConfig(cfg config.TreeConfig, colorOutput bool) (Options, error) {
	if cfg.MaxPerExtension <= 0 {
		return Options{}, fmt.Errorf("max per extension must be > 0, got %d", cfg.MaxPerExtension)
	}

	palette := Palette{Extensions: make(map[string]*color.Color, len(cfg.Colors))}
	for ext, name := range cfg.Colors {
		c, err := display.ParseColor(name)
		if err != nil {
			return Options{}, fmt.Errorf("color for %s: %w", ext, err)
		}
		palette.Extensions[ext] = c
	}

	var err error
	if palette.Default, err = display.ParseColor(cfg.DefaultColor); err != nil {
		return Options{}, fmt.Errorf("default color: %w", err)
	}
	if palette.Directory, err = display.ParseColor(cfg.DirectoryColor); err != nil {
		return Options{}, fmt.Errorf("directory color: %w", err)
	}
	if palette.Omitted, err = display.ParseColor(cfg.OmittedColor); err != nil {
		return Options{}, fmt.Errorf("omitted color: %w", err)
	}

	return Options{
		IgnoreFolders:   append([]string(nil), cfg.IgnoreFolders...),
		MaxPerExtension: cfg.MaxPerExtension,
		Palette:         palette,
		Color:           colorOutput,
	}, nil
}

// DefaultOptions returns the built-in ignore-set, cap of 50 and color table, without color output.
func DefaultOptions() Options {
	opts, err := OptionsFromConfig(config.DefaultConfig().Tree, false)
	if err != nil {
		panic(err)
	}
	return opts
}
