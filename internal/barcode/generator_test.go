package barcode

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/assetkit/internal/logger"
	"github.com/harrison/assetkit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingEncoder always fails to encode.
type failingEncoder struct{}

func (failingEncoder) Encode(string, Symbology) ([]byte, error) {
	return nil, errors.New("renderer exploded")
}

func (failingEncoder) Extension() string { return ".png" }

func newTestGenerator(t *testing.T) (*Generator, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	g := NewGenerator(filepath.Join(t.TempDir(), "barcodes"), nil, logger.NewConsoleLogger(logs, "debug"))
	return g, logs
}

func TestNewGeneratorDefaults(t *testing.T) {
	g := NewGenerator("", nil, nil)

	assert.Equal(t, DefaultOutputDir, g.OutputDir)
	assert.IsType(t, &RasterEncoder{}, g.Encoder)
	assert.NotNil(t, g.Logger)
	assert.Equal(t, filepath.Join("barcodes", "12345678_barcode.png"), g.Path("12345678"))
}

func TestGenerate_Valid(t *testing.T) {
	g, _ := newTestGenerator(t)

	path, err := g.Generate("12345678")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, "12345678_barcode.png"), "got %s", path)
	assert.Equal(t, g.OutputDir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output must be a valid PNG")
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestGenerate_CreatesNestedOutputDir(t *testing.T) {
	g, _ := newTestGenerator(t)
	g.OutputDir = filepath.Join(g.OutputDir, "a", "b")

	path, ok := g.GenerateBarcode("ABC123")
	require.True(t, ok)
	assert.FileExists(t, path)
}

func TestGenerate_Idempotent(t *testing.T) {
	g, _ := newTestGenerator(t)

	first, err := g.Generate("SN-0001")
	require.NoError(t, err)
	second, err := g.Generate("SN-0001")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	entries, err := os.ReadDir(g.OutputDir)
	require.NoError(t, err)
	var images []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), ".") {
			images = append(images, e.Name())
		}
	}
	assert.Equal(t, []string{"SN-0001_barcode.png"}, images)
}

func TestGenerateBarcode_InvalidSerials(t *testing.T) {
	tests := []struct {
		name   string
		serial string
	}{
		{"empty", ""},
		{"control character", "ABC\x01"},
		{"non ascii", "序列号"},
		{"path traversal", "../escape"},
		{"too long", strings.Repeat("9", models.MaxSerialLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, logs := newTestGenerator(t)

			var path string
			var ok bool
			assert.NotPanics(t, func() { path, ok = g.GenerateBarcode(tt.serial) })
			assert.False(t, ok)
			assert.Empty(t, path)
			assert.Contains(t, logs.String(), "Error generating barcode:")

			_, err := g.Generate(tt.serial)
			assert.True(t, errors.Is(err, models.ErrInvalidSerial))

			_, statErr := os.Stat(g.OutputDir)
			assert.True(t, os.IsNotExist(statErr), "invalid serials must not touch the filesystem")
		})
	}
}

func TestGenerate_EncoderFailureLeavesNoFile(t *testing.T) {
	g, logs := newTestGenerator(t)
	g.Encoder = failingEncoder{}

	path, ok := g.GenerateBarcode("ABC123")
	assert.False(t, ok)
	assert.Empty(t, path)
	assert.Contains(t, logs.String(), "renderer exploded")
	assert.NoFileExists(t, g.Path("ABC123"))
}

func TestGenerate_OutputDirIsFile(t *testing.T) {
	g, logs := newTestGenerator(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(g.OutputDir), 0755))
	require.NoError(t, os.WriteFile(g.OutputDir, []byte("not a dir"), 0644))

	_, ok := g.GenerateBarcode("ABC123")
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "failed to create output directory")
}

func TestRemove(t *testing.T) {
	g, logs := newTestGenerator(t)

	path, err := g.Generate("ABC123")
	require.NoError(t, err)

	assert.True(t, g.Remove(path))
	assert.NoFileExists(t, path)

	entries, err := os.ReadDir(g.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "lock file is removed with the image")

	assert.False(t, g.Remove(path), "missing image is reported, not returned as an error")
	assert.Contains(t, logs.String(), "does not exist")
}
