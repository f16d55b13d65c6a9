package extract_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/openaudit/internal/ingest"
	"github.com/MrJamesThe3rd/openaudit/internal/ingest/extract"
)

func drain(t *testing.T, src ingest.RowSource) []ingest.Record {
	t.Helper()

	var out []ingest.Record

	for {
		rec, err := src.Next()
		if err == io.EOF {
			return out
		}

		require.NoError(t, err)

		out = append(out, rec)
	}
}

func TestIsWorkbook(t *testing.T) {
	assert.True(t, extract.IsWorkbook("data/COA.XLSX"))
	assert.True(t, extract.IsWorkbook("a.xlsm"))
	assert.False(t, extract.IsWorkbook("a.csv"))
	assert.False(t, extract.IsWorkbook("a.tsv"))
	assert.False(t, extract.IsWorkbook("noext"))
}

func TestOpen_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extract.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"lgu,province,year,unliquidated\nTown A,ProvX,2020,50000\n",
	), 0o600))

	f, err := extract.Open(path, "")
	require.NoError(t, err)

	defer f.Close()

	assert.Contains(t, f.Format, "csv")

	recs := drain(t, f)
	require.Len(t, recs, 1)
	assert.Equal(t, "Town A", recs[0].LGU)
	assert.Equal(t, "50000", recs[0].Amount)
}

func TestOpen_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extract.xlsx")

	wb := excelize.NewFile()
	require.NoError(t, wb.SetSheetRow("Sheet1", "A1", &[]any{"LGU", "Province", "Year", "Unliquidated"}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A2", &[]any{"Town B", "ProvY", 2021, 400000}))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	f, err := extract.Open(path, "")
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t, "xlsx sheet Sheet1", f.Format)

	recs := drain(t, f)
	require.Len(t, recs, 1)
	assert.Equal(t, "Town B", recs[0].LGU)
	assert.Equal(t, "2021", recs[0].Year)
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := extract.Open(filepath.Join(dir, "missing.csv"), "")
	assert.Error(t, err)

	noHeader := filepath.Join(dir, "junk.csv")
	require.NoError(t, os.WriteFile(noHeader, []byte("a,b\n1,2\n"), 0o600))

	_, err = extract.Open(noHeader, "")
	assert.ErrorIs(t, err, ingest.ErrNoHeader)
}
