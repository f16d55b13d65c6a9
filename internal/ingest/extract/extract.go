// Package extract opens an extract file with the reader matching its format.
package extract

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/openaudit/internal/ingest"
	"github.com/MrJamesThe3rd/openaudit/internal/ingest/csv"
	"github.com/MrJamesThe3rd/openaudit/internal/ingest/xlsx"
)

// File is an open extract positioned after its header row.
type File struct {
	*ingest.TableSource
	Format  string
	closers []func() error
}

// IsWorkbook reports whether path names an Excel workbook. Anything else is
// read as delimited text.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}

	return false
}

// Open opens path and locates its header. sheet selects the worksheet of a
// workbook and is ignored for delimited text.
func Open(path, sheet string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open extract: %w", err)
	}

	out := &File{closers: []func() error{f.Close}}

	var table ingest.Table

	if IsWorkbook(path) {
		t, err := xlsx.NewTable(f, sheet)
		if err != nil {
			out.Close()
			return nil, err
		}

		out.closers = append(out.closers, t.Close)
		out.Format = "xlsx sheet " + t.Sheet
		table = t
	} else {
		t, err := csv.NewTable(f)
		if err != nil {
			out.Close()
			return nil, err
		}

		out.Format = fmt.Sprintf("csv %s delimiter %q", t.Charset, t.Comma)
		table = t
	}

	src, err := ingest.NewTableSource(table)
	if err != nil {
		out.Close()
		return nil, fmt.Errorf("read header: %w", err)
	}

	out.TableSource = src

	slog.Info("opened extract", "path", path, "format", out.Format)

	return out, nil
}

// Close releases the underlying reader and file, innermost first.
func (f *File) Close() error {
	var first error

	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i](); err != nil && first == nil {
			first = err
		}
	}

	f.closers = nil

	return first
}
