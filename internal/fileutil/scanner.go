package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/assetkit/internal/models"
)

// ListOptions configures a single-level directory listing
type ListOptions struct {
	// ExcludeDirs is a list of directory names to drop (e.g., ".git", "node_modules").
	// Files with the same name are still listed.
	ExcludeDirs []string
}

// ListDir returns the entries of dir sorted by name, minus excluded directories
func ListDir(dir string, opts ListOptions) ([]models.DirectoryEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	// Create excluded dirs map
	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	entries := make([]models.DirectoryEntry, 0, len(dirEntries))
	for _, d := range dirEntries {
		name := d.Name()
		isDir := d.IsDir()

		path := filepath.Join(dir, name)
		if excludeMap[name] && (isDir || isDirSymlink(d, path)) {
			continue
		}

		entry := models.DirectoryEntry{
			Name:  name,
			Path:  path,
			IsDir: isDir,
		}
		if !isDir {
			entry.Ext = Ext(name)
		}
		entries = append(entries, entry)
	}

	// os.ReadDir already sorts, but keep the ordering explicit
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// isDirSymlink reports whether d is a symlink whose target is a directory.
// Broken links are not directories.
func isDirSymlink(d fs.DirEntry, path string) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Ext returns the lowercased extension of name, including the leading dot.
// Dotfiles such as ".bashrc" have no extension.
func Ext(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.ToLower(ext)
}
