package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/assetkit/internal/display"
	"github.com/harrison/assetkit/internal/logger"
	"gopkg.in/yaml.v3"
)

// TreeConfig represents treeview configuration
type TreeConfig struct {
	// MaxPerExtension is the number of files per extension listed in one directory
	// before the rest are collapsed into an omission marker
	MaxPerExtension int `yaml:"max_per_extension"`

	// IgnoreFolders are directory names that are never listed or descended into
	IgnoreFolders []string `yaml:"ignore_folders"`

	// Colors maps lowercased file extensions (".py") to color names ("blue")
	Colors map[string]string `yaml:"colors"`

	// DefaultColor is used for extensions missing from Colors
	DefaultColor string `yaml:"default_color"`

	// DirectoryColor is used for directory names
	DirectoryColor string `yaml:"directory_color"`

	// OmittedColor is used for omission markers
	OmittedColor string `yaml:"omitted_color"`
}

// BarcodeConfig represents barcode generator configuration
type BarcodeConfig struct {
	// OutputDir is where barcode images are written
	OutputDir string `yaml:"output_dir"`

	// ModuleWidth is the width in pixels of the narrowest bar
	ModuleWidth int `yaml:"module_width"`

	// BarHeight is the height in pixels of the bars
	BarHeight int `yaml:"bar_height"`

	// QuietZone is the blank margin in pixels around the symbol
	QuietZone int `yaml:"quiet_zone"`

	// ShowText prints the serial number under the bars
	ShowText bool `yaml:"show_text"`
}

// Config represents assetkit configuration options
type Config struct {
	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	Tree    TreeConfig    `yaml:"tree"`
	Barcode BarcodeConfig `yaml:"barcode"`
}

// DefaultIgnoreFolders are version-control, dependency, virtualenv and build-cache folders.
var DefaultIgnoreFolders = []string{
	".git",
	"__pycache__",
	"node_modules",
	"venv",
	"sg_env",
	"sg_env310",
	".vite",
	"deps",
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Tree: TreeConfig{
			MaxPerExtension: 50,
			IgnoreFolders:   append([]string(nil), DefaultIgnoreFolders...),
			Colors: map[string]string{
				".py":   "blue",
				".js":   "yellow",
				".ts":   "green",
				".tsx":  "green",
				".json": "magenta",
				".html": "red",
				".css":  "green",
				".md":   "bold white",
			},
			DefaultColor:   "white",
			DirectoryColor: "green",
			OmittedColor:   "red",
		},
		Barcode: BarcodeConfig{
			OutputDir:   "barcodes",
			ModuleWidth: 2,
			BarHeight:   80,
			QuietZone:   20,
			ShowText:    true,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
//
// Values present in the file override defaults. Color entries are merged
// into the default color table; ignore_folders replaces the default list.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .assetkit/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ".assetkit", "config.yaml")
	return LoadConfig(configPath)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.ValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	if c.Tree.MaxPerExtension <= 0 {
		return fmt.Errorf("tree.max_per_extension must be > 0, got %d", c.Tree.MaxPerExtension)
	}
	for _, name := range c.Tree.IgnoreFolders {
		if name == "" {
			return fmt.Errorf("tree.ignore_folders cannot contain an empty name")
		}
	}
	for ext, name := range c.Tree.Colors {
		if _, err := display.ParseColor(name); err != nil {
			return fmt.Errorf("tree.colors[%s]: %w", ext, err)
		}
	}
	for field, name := range map[string]string{
		"default_color":   c.Tree.DefaultColor,
		"directory_color": c.Tree.DirectoryColor,
		"omitted_color":   c.Tree.OmittedColor,
	} {
		if _, err := display.ParseColor(name); err != nil {
			return fmt.Errorf("tree.%s: %w", field, err)
		}
	}

	if c.Barcode.OutputDir == "" {
		return fmt.Errorf("barcode.output_dir cannot be empty")
	}
	if c.Barcode.ModuleWidth <= 0 {
		return fmt.Errorf("barcode.module_width must be > 0, got %d", c.Barcode.ModuleWidth)
	}
	if c.Barcode.BarHeight <= 0 {
		return fmt.Errorf("barcode.bar_height must be > 0, got %d", c.Barcode.BarHeight)
	}
	if c.Barcode.QuietZone < 0 {
		return fmt.Errorf("barcode.quiet_zone must be >= 0, got %d", c.Barcode.QuietZone)
	}

	return nil
}
