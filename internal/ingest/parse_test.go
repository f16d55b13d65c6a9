package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name       string
		rec        Record
		wantReason string
		verify     func(t *testing.T, row Row)
	}{
		{
			name: "Valid",
			rec:  Record{LGU: " Town A ", Province: "ProvX", Year: "2020", Amount: "50000"},
			verify: func(t *testing.T, row Row) {
				assert.Equal(t, "Town A", row.LGUName)
				require.NotNil(t, row.Province)
				assert.Equal(t, "ProvX", *row.Province)
				assert.Equal(t, 2020, row.Year)
				assert.True(t, row.Amount.Equal(decimal.RequireFromString("50000")))
				assert.Nil(t, row.ContextPre)
			},
		},
		{
			name: "FloatYearAndSeparators",
			rec:  Record{LGU: "Town A", Year: "2021.0", Amount: "₱1,234,567.89", ContextPre: "cash advance"},
			verify: func(t *testing.T, row Row) {
				assert.Equal(t, 2021, row.Year)
				assert.Equal(t, "1234567.89", row.Amount.String())
				assert.Nil(t, row.Province)
				require.NotNil(t, row.ContextPre)
				assert.Equal(t, "cash advance", *row.ContextPre)
			},
		},
		{
			name: "NaNProvinceIsNull",
			rec:  Record{LGU: "Town A", Province: "NaN", Year: "2021", Amount: "1"},
			verify: func(t *testing.T, row Row) {
				assert.Nil(t, row.Province)
			},
		},
		{name: "MissingLGU", rec: Record{Year: "2020", Amount: "1"}, wantReason: reasonMissingLGU},
		{name: "MissingYear", rec: Record{LGU: "Town A", Amount: "1"}, wantReason: reasonMissingYear},
		{name: "NullAmount", rec: Record{LGU: "Town A", Year: "2020", Amount: "nan"}, wantReason: reasonMissingAmount},
		{name: "FractionalYear", rec: Record{LGU: "Town A", Year: "2020.5", Amount: "1"}, wantReason: reasonBadYear},
		{name: "TextYear", rec: Record{LGU: "Town A", Year: "FY2020", Amount: "1"}, wantReason: reasonBadYear},
		{name: "TextAmount", rec: Record{LGU: "Town A", Year: "2020", Amount: "see note"}, wantReason: reasonBadAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, reason := parseRecord(tt.rec)
			assert.Equal(t, tt.wantReason, reason)

			if tt.verify != nil {
				tt.verify(t, row)
			}
		})
	}
}
