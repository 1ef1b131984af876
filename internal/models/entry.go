package models

// DirectoryEntry is a single filesystem entry seen during a directory listing.
// It is rebuilt on every listing and never persisted.
type DirectoryEntry struct {
	// Name is the base name of the entry
	Name string
	// Path is the entry's path, joined onto the listed directory
	Path string
	// IsDir reports whether the entry is a directory (symlinks are not followed)
	IsDir bool
	// Ext is the lowercased file extension including the dot; empty for
	// directories and for files without an extension
	Ext string
}

// ExtensionDisplayCounter tracks how many files of each extension have been
// shown within one directory level. A new counter is used for every directory.
type ExtensionDisplayCounter struct {
	limit   int
	counts  map[string]int
	omitted map[string]bool
}

// NewExtensionDisplayCounter creates a counter that allows limit entries per extension.
func NewExtensionDisplayCounter(limit int) *ExtensionDisplayCounter {
	return &ExtensionDisplayCounter{
		limit:   limit,
		counts:  make(map[string]int),
		omitted: make(map[string]bool),
	}
}

// Admit records one more file of the given extension.
// It returns show=true while the extension is under the limit. The first call
// past the limit returns marker=true so the caller emits one omission marker;
// every later call returns false for both.
func (c *ExtensionDisplayCounter) Admit(ext string) (show bool, marker bool) {
	if c.counts[ext] < c.limit {
		c.counts[ext]++
		return true, false
	}
	if c.omitted[ext] {
		return false, false
	}
	c.omitted[ext] = true
	return false, true
}

// Shown returns the number of files displayed for ext.
func (c *ExtensionDisplayCounter) Shown(ext string) int {
	return c.counts[ext]
}
