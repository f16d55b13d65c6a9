package ingest

import "strings"

// Column headers of an extract. Matching ignores case and surrounding space.
const (
	ColLGU         = "lgu"
	ColProvince    = "province"
	ColYear        = "year"
	ColAmount      = "unliquidated"
	ColContextPre  = "context_pre"
	ColContextPost = "context_post"
)

var requiredCols = []string{ColLGU, ColProvince, ColYear, ColAmount}

// headerScanLimit bounds how many leading rows may precede the header.
const headerScanLimit = 20

// colIndex maps lower-cased column names to their index in a row.
type colIndex map[string]int

func indexHeader(row []string) colIndex {
	cols := make(colIndex, len(row))

	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			continue
		}

		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	return cols
}

func (c colIndex) hasRequired() bool {
	for _, name := range requiredCols {
		if _, ok := c[name]; !ok {
			return false
		}
	}

	return true
}

// value returns the trimmed cell for name, or "" when the column is absent
// or the row is short.
func (c colIndex) value(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
