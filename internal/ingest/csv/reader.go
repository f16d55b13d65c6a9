// Package csv reads delimited-text extracts in any of the encodings
// spreadsheet tools commonly export.
package csv

import (
	"bufio"
	"bytes"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"log/slog"

	enc "github.com/MrJamesThe3rd/openaudit/internal/encoding"
)

var delimiters = []rune{',', ';', '\t'}

// Table reads a delimited extract row by row.
type Table struct {
	r       *stdcsv.Reader
	Charset enc.Charset
	Comma   rune
}

// NewTable detects the encoding and delimiter of r. The delimiter is whichever
// of comma, semicolon or tab occurs most on the first line.
func NewTable(r io.Reader) (*Table, error) {
	utf8r, charset, err := enc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	first, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if i := bytes.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}

	comma := sniffDelimiter(first)

	reader := stdcsv.NewReader(br)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	slog.Debug("reading csv extract", "charset", charset, "delimiter", string(comma))

	return &Table{r: reader, Charset: charset, Comma: comma}, nil
}

func sniffDelimiter(line []byte) rune {
	best, bestCount := ',', 0

	for _, d := range delimiters {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}

	return best
}

func (t *Table) Read() ([]string, error) {
	row, err := t.r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("read csv: %w", err)
	}

	return row, nil
}
