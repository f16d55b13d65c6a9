// Package xlsx reads extracts saved as Excel workbooks.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Table streams the rows of one worksheet.
type Table struct {
	file  *excelize.File
	rows  *excelize.Rows
	Sheet string
}

// NewTable opens the workbook in r and positions on sheet, or on the first
// sheet when sheet is empty. Callers must Close the table.
func NewTable(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		f.Close()
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	return &Table{file: f, rows: rows, Sheet: sheet}, nil
}

func (t *Table) Read() ([]string, error) {
	if !t.rows.Next() {
		if err := t.rows.Error(); err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		return nil, io.EOF
	}

	cols, err := t.rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	return cols, nil
}

func (t *Table) Close() error {
	if err := t.rows.Close(); err != nil {
		t.file.Close()
		return err
	}

	return t.file.Close()
}
