// Package barcode generates Code128 barcode images for asset serial numbers.
//
// A Generator validates the serial, renders it through an Encoder and writes
// <output-dir>/<serial>_barcode<ext>. Writes go through a temp file and a
// rename under a per-file lock, so a failed attempt never leaves a partial
// image and concurrent generations of the same serial produce one complete file.
package barcode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/assetkit/internal/config"
	"github.com/harrison/assetkit/internal/filelock"
	"github.com/harrison/assetkit/internal/logger"
	"github.com/harrison/assetkit/internal/models"
)

// DefaultOutputDir is the output directory used when none is configured.
const DefaultOutputDir = "barcodes"

// Generator writes barcode images for serial numbers.
type Generator struct {
	OutputDir string
	Encoder   Encoder
	Logger    logger.Logger
}

// NewGenerator creates a Generator. Empty or nil arguments fall back to
// DefaultOutputDir, a RasterEncoder with default sizes, and a no-op logger.
func NewGenerator(outputDir string, encoder Encoder, log logger.Logger) *Generator {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if encoder == nil {
		encoder = NewRasterEncoder(config.DefaultConfig().Barcode)
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Generator{
		OutputDir: outputDir,
		Encoder:   encoder,
		Logger:    log,
	}
}

// NewGeneratorFromConfig creates a Generator from the barcode configuration.
func NewGeneratorFromConfig(cfg config.BarcodeConfig, log logger.Logger) *Generator {
	return NewGenerator(cfg.OutputDir, NewRasterEncoder(cfg), log)
}

// Path returns where the image for serial is written.
func (g *Generator) Path(serial string) string {
	req := models.BarcodeRequest{Serial: serial, OutputDir: g.OutputDir}
	return filepath.Join(req.OutputDir, req.FileStem()+g.Encoder.Extension())
}

// Generate renders serial as a Code128 image and returns the written file path.
// Generating the same serial again overwrites the same path.
func (g *Generator) Generate(serial string) (string, error) {
	req := models.BarcodeRequest{Serial: serial, OutputDir: g.OutputDir}
	if err := req.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", req.OutputDir, err)
	}

	data, err := g.Encoder.Encode(req.Serial, Code128)
	if err != nil {
		return "", err
	}

	path := g.Path(req.Serial)
	if err := filelock.LockAndWrite(path, data); err != nil {
		return "", fmt.Errorf("failed to write barcode image: %w", err)
	}

	g.Logger.LogDebug(fmt.Sprintf("Wrote barcode %s (%d bytes)", path, len(data)))
	return path, nil
}

// GenerateBarcode is Generate without an error return: failures are logged
// and reported as ok=false with an empty path.
func (g *Generator) GenerateBarcode(serial string) (path string, ok bool) {
	path, err := g.Generate(serial)
	if err != nil {
		g.Logger.LogError(fmt.Sprintf("Error generating barcode: %v", err))
		return "", false
	}
	return path, true
}

// Remove deletes a generated image and its lock file and reports whether the
// image was removed. Failures, including a missing file, are logged as
// warnings rather than returned.
func (g *Generator) Remove(path string) bool {
	removed := true
	if err := os.Remove(path); err != nil {
		removed = false
		if errors.Is(err, os.ErrNotExist) {
			g.Logger.LogWarn(fmt.Sprintf("Barcode file %s does not exist", path))
		} else {
			g.Logger.LogWarn(fmt.Sprintf("Failed to delete barcode file: %v", err))
		}
	}
	if err := os.Remove(filelock.LockPath(path)); err != nil && !errors.Is(err, os.ErrNotExist) {
		g.Logger.LogDebug(fmt.Sprintf("Failed to delete lock file: %v", err))
	}
	return removed
}
