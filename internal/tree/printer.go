// Package tree prints an indented, colorized listing of a directory tree.
package tree

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harrison/assetkit/internal/display"
	"github.com/harrison/assetkit/internal/fileutil"
	"github.com/harrison/assetkit/internal/models"
)

// Box-drawing connectors and continuation prefixes
const (
	connectorMiddle = "├── "
	connectorLast   = "└── "
	prefixOpen      = "│   "
	prefixClosed    = "    "
)

type rowKind int

const (
	rowFile rowKind = iota
	rowDir
	rowOmitted
)

// row is one displayed line at a single directory level.
type row struct {
	kind  rowKind
	entry models.DirectoryEntry
	text  string
}

// Printer renders directory trees.
type Printer struct {
	opts Options
}

// NewPrinter creates a Printer. The ignore list is copied so later changes by
// the caller don't affect the printer.
func NewPrinter(opts Options) *Printer {
	opts.IgnoreFolders = append([]string(nil), opts.IgnoreFolders...)
	return &Printer{opts: opts}
}

// Print writes the tree below root to w. The root itself is not printed.
// Filesystem errors end the walk and are returned.
func (p *Printer) Print(w io.Writer, root string) error {
	return p.printDir(w, root, "")
}

func (p *Printer) printDir(w io.Writer, dir string, indent string) error {
	entries, err := fileutil.ListDir(dir, fileutil.ListOptions{ExcludeDirs: p.opts.IgnoreFolders})
	if err != nil {
		return err
	}

	rows := p.layout(entries)
	for i, r := range rows {
		last := i == len(rows)-1
		connector := connectorMiddle
		if last {
			connector = connectorLast
		}

		switch r.kind {
		case rowOmitted:
			if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, connector, p.paint(p.opts.Palette.Omitted, r.text)); err != nil {
				return err
			}
		case rowFile:
			c := p.opts.Palette.ForFile(r.entry.Ext)
			if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, connector, p.paint(c, r.entry.Name)); err != nil {
				return err
			}
		case rowDir:
			if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, connector, p.paint(p.opts.Palette.Directory, r.entry.Name)); err != nil {
				return err
			}
			childIndent := indent + prefixOpen
			if last {
				childIndent = indent + prefixClosed
			}
			if err := p.printDir(w, r.entry.Path, childIndent); err != nil {
				return err
			}
		}
	}

	return nil
}

// layout decides which lines a directory level shows. Files past the
// per-extension cap collapse into one omission marker placed where the first
// suppressed file would have been.
func (p *Printer) layout(entries []models.DirectoryEntry) []row {
	totals := make(map[string]int)
	for _, e := range entries {
		if !e.IsDir {
			totals[e.Ext]++
		}
	}

	counter := models.NewExtensionDisplayCounter(p.opts.MaxPerExtension)
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		if e.IsDir {
			rows = append(rows, row{kind: rowDir, entry: e})
			continue
		}

		show, marker := counter.Admit(e.Ext)
		switch {
		case show:
			rows = append(rows, row{kind: rowFile, entry: e})
		case marker:
			omitted := totals[e.Ext] - counter.Shown(e.Ext)
			rows = append(rows, row{kind: rowOmitted, text: omissionText(e.Ext, omitted)})
		}
	}
	return rows
}

// omissionText formats the marker line, e.g. "... (10 .py files omitted)".
func omissionText(ext string, count int) string {
	noun := "files"
	if count == 1 {
		noun = "file"
	}
	if ext == "" {
		return fmt.Sprintf("... (%d %s without extension omitted)", count, noun)
	}
	return fmt.Sprintf("... (%d %s %s omitted)", count, ext, noun)
}

func (p *Printer) paint(c *color.Color, s string) string {
	return display.Paint(c, s, p.opts.Color)
}
