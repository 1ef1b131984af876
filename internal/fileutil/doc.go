// Package fileutil provides the directory listing used by the tree printer.
//
// ListDir reads a single directory level and returns its entries as
// models.DirectoryEntry values:
//
//	entries, err := fileutil.ListDir("/path/to/project", fileutil.ListOptions{
//	    ExcludeDirs: []string{".git", "node_modules"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, e := range entries {
//	    fmt.Println(e.Name, e.Ext)
//	}
//
// Entries are sorted by name (byte-wise, so "B" sorts before "a"), excluded
// directory names are dropped, and file extensions are lowercased. Symbolic
// links are reported as files and never followed, except that a link to a
// directory is dropped when its name is excluded.
package fileutil
