package ingest

import (
	"errors"
	"fmt"
	"io"
)

// Table is a sequence of raw rows, the header among them. Read returns
// io.EOF after the last row.
type Table interface {
	Read() ([]string, error)
}

// TableSource adapts a Table into a RowSource by locating the header row and
// mapping every later row through it.
type TableSource struct {
	table Table
	cols  colIndex
	line  int
}

// NewTableSource scans the leading rows of t for the header. Rows before it
// (titles, blank lines) are discarded.
func NewTableSource(t Table) (*TableSource, error) {
	s := &TableSource{table: t}

	for s.line < headerScanLimit {
		row, err := t.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}

		s.line++

		if cols := indexHeader(row); cols.hasRequired() {
			s.cols = cols
			return s, nil
		}
	}

	return nil, ErrNoHeader
}

func (s *TableSource) Next() (Record, error) {
	for {
		row, err := s.table.Read()
		if err != nil {
			return Record{}, err
		}

		s.line++

		if isBlank(row) {
			continue
		}

		return Record{
			Line:        s.line,
			LGU:         s.cols.value(row, ColLGU),
			Province:    s.cols.value(row, ColProvince),
			Year:        s.cols.value(row, ColYear),
			Amount:      s.cols.value(row, ColAmount),
			ContextPre:  s.cols.value(row, ColContextPre),
			ContextPost: s.cols.value(row, ColContextPost),
		}, nil
	}
}

func isBlank(row []string) bool {
	for _, cell := range row {
		for _, r := range cell {
			if r != ' ' && r != '\t' {
				return false
			}
		}
	}

	return true
}
