package csv_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/openaudit/internal/encoding"
	"github.com/MrJamesThe3rd/openaudit/internal/ingest"
	"github.com/MrJamesThe3rd/openaudit/internal/ingest/csv"
)

func readRows(t *testing.T, table *csv.Table) [][]string {
	t.Helper()

	var rows [][]string

	for {
		row, err := table.Read()
		if err == io.EOF {
			return rows
		}

		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestNewTable_Comma(t *testing.T) {
	input := "lgu,province,year,unliquidated\n\"Parañaque, City of\",Metro Manila,2021,\"1,500.00\"\n"

	table, err := csv.NewTable(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, ',', table.Comma)
	assert.Equal(t, encoding.UTF8, table.Charset)

	rows := readRows(t, table)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Parañaque, City of", "Metro Manila", "2021", "1,500.00"}, rows[1])
}

func TestNewTable_SemicolonWindows1252(t *testing.T) {
	// "lgu;province;year;unliquidated\nPeñablanca;Cagayan;2020;75000\n" with ñ as 0xF1.
	var buf bytes.Buffer
	buf.WriteString("lgu;province;year;unliquidated\nPe")
	buf.WriteByte(0xF1)
	buf.WriteString("ablanca;Cagayan;2020;75000\n")

	table, err := csv.NewTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, ';', table.Comma)

	rows := readRows(t, table)
	require.Len(t, rows, 2)
	assert.Equal(t, "Peñablanca", rows[1][0])
}

func TestNewTable_FeedsTableSource(t *testing.T) {
	input := "LGU\tProvince\tYear\tUnliquidated\nTown A\t\t2020.0\t50000\n"

	table, err := csv.NewTable(strings.NewReader(input))
	require.NoError(t, err)

	src, err := ingest.NewTableSource(table)
	require.NoError(t, err)

	rec, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "Town A", rec.LGU)
	assert.Empty(t, rec.Province)
	assert.Equal(t, "2020.0", rec.Year)

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}
