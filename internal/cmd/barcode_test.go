package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarcodeCommand_Success(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, _, err := execute(t, NewBarcodeCommand(), "ABC123")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 1, "exactly one line on stdout")
	assert.Equal(t, filepath.Join("barcodes", "ABC123_barcode.png"), lines[0])
	assert.FileExists(t, lines[0])
}

func TestBarcodeCommand_InvalidSerialPrintsError(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, stderr, err := execute(t, NewBarcodeCommand(), "bad\tserial")
	require.NoError(t, err)
	assert.Equal(t, ErrorToken+"\n", stdout)
	assert.Contains(t, stderr, "Error generating barcode:")
}

func TestBarcodeCommand_ConfigOutputDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfgPath := filepath.Join(dir, "codes.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("barcode:\n  output_dir: labels/out\n  show_text: false\n"), 0644))

	stdout, _, err := execute(t, NewBarcodeCommand(), "--config", cfgPath, "12345678")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("labels", "out", "12345678_barcode.png")+"\n", stdout)
}

func TestBarcodeCommand_BadConfigPrintsError(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfgPath := filepath.Join(dir, "codes.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("barcode:\n  bar_height: -3\n"), 0644))

	stdout, stderr, err := execute(t, NewBarcodeCommand(), "--config", cfgPath, "12345678")
	require.NoError(t, err)
	assert.Equal(t, ErrorToken+"\n", stdout)
	assert.Contains(t, stderr, "bar_height")
}

func TestBarcodeCommand_Delete(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, _, err := execute(t, NewBarcodeCommand(), "SN-1")
	require.NoError(t, err)
	path := strings.TrimSpace(stdout)
	require.FileExists(t, path)

	stdout, _, err = execute(t, NewBarcodeCommand(), "--delete", "SN-1")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
	assert.NoFileExists(t, path)

	stdout, stderr, err := execute(t, NewBarcodeCommand(), "--delete", "SN-1")
	require.NoError(t, err)
	assert.Equal(t, ErrorToken+"\n", stdout, "nothing left to remove")
	assert.Contains(t, stderr, "does not exist")
}

func TestBarcodeCommand_DeleteRejectsTraversal(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, _, err := execute(t, NewBarcodeCommand(), "--delete", "../x")
	require.NoError(t, err)
	assert.Equal(t, ErrorToken+"\n", stdout)
}

func TestBarcodeCommand_ArgumentCount(t *testing.T) {
	_, _, err := execute(t, NewBarcodeCommand())
	assert.Error(t, err)

	_, _, err = execute(t, NewBarcodeCommand(), "a", "b")
	assert.Error(t, err)
}

func TestBarcodeCommand_DashSerials(t *testing.T) {
	tests := []string{"-123", "-v", "-h", "--version", "--help"}

	for _, serial := range tests {
		t.Run(serial, func(t *testing.T) {
			chdir(t, t.TempDir())

			stdout, _, err := execute(t, NewBarcodeCommand(), serial)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
			require.Len(t, lines, 1, "exactly one line on stdout, got %q", stdout)
			assert.Equal(t, filepath.Join("barcodes", serial+"_barcode.png"), lines[0])
			assert.FileExists(t, lines[0])
		})
	}
}

func TestBarcodeCommand_FlagForms(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfgPath := filepath.Join(dir, "codes.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("barcode:\n  output_dir: out\n"), 0644))

	stdout, _, err := execute(t, NewBarcodeCommand(), "--config="+cfgPath, "-7")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "-7_barcode.png")+"\n", stdout)

	stdout, _, err = execute(t, NewBarcodeCommand(), "--", "--delete")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("barcodes", "--delete_barcode.png")+"\n", stdout, "arguments after -- are serials")

	_, _, err = execute(t, NewBarcodeCommand(), "ABC", "--config")
	assert.Error(t, err)
}
