package ingest_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/openaudit/internal/ingest"
)

type sliceTable [][]string

func (t *sliceTable) Read() ([]string, error) {
	if len(*t) == 0 {
		return nil, io.EOF
	}

	row := (*t)[0]
	*t = (*t)[1:]

	return row, nil
}

func drain(t *testing.T, src ingest.RowSource) []ingest.Record {
	t.Helper()

	var recs []ingest.Record

	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return recs
		}

		require.NoError(t, err)
		recs = append(recs, rec)
	}
}

func TestTableSource(t *testing.T) {
	table := &sliceTable{
		{"Unliquidated cash advances, FY2019-2021"},
		{},
		{"Year", " UNLIQUIDATED ", "Province", "LGU", "context_post"},
		{"2020", "50000", "ProvX", "Town A", "for travel"},
		{"", "", "", ""},
		{"2021", "75000", "ProvX", "Town A"},
	}

	src, err := ingest.NewTableSource(table)
	require.NoError(t, err)

	recs := drain(t, src)
	require.Len(t, recs, 2)

	assert.Equal(t, ingest.Record{
		Line: 4, LGU: "Town A", Province: "ProvX", Year: "2020", Amount: "50000", ContextPost: "for travel",
	}, recs[0])
	assert.Equal(t, 6, recs[1].Line)
	assert.Empty(t, recs[1].ContextPost)
}

func TestTableSource_NoHeader(t *testing.T) {
	table := &sliceTable{
		{"name", "province", "year", "amount"},
		{"Town A", "ProvX", "2020", "1"},
	}

	_, err := ingest.NewTableSource(table)
	assert.ErrorIs(t, err, ingest.ErrNoHeader)
}
