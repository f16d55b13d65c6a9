package ingest

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Skip reasons reported for rejected records.
const (
	reasonMissingLGU    = "missing lgu"
	reasonMissingYear   = "missing year"
	reasonMissingAmount = "missing amount"
	reasonBadYear       = "unparseable year"
	reasonBadAmount     = "unparseable amount"
)

// nullMarkers are cell values spreadsheet and dataframe exports write for
// missing data.
var nullMarkers = map[string]struct{}{
	"":     {},
	"nan":  {},
	"null": {},
	"none": {},
	"n/a":  {},
	"#n/a": {},
}

func isNull(s string) bool {
	_, ok := nullMarkers[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func optional(s string) *string {
	if isNull(s) {
		return nil
	}

	s = strings.TrimSpace(s)

	return &s
}

// parseRecord validates rec. A non-empty reason means the record is skipped.
func parseRecord(rec Record) (Row, string) {
	if isNull(rec.LGU) {
		return Row{}, reasonMissingLGU
	}

	if isNull(rec.Year) {
		return Row{}, reasonMissingYear
	}

	if isNull(rec.Amount) {
		return Row{}, reasonMissingAmount
	}

	year, err := parseYear(rec.Year)
	if err != nil {
		return Row{}, reasonBadYear
	}

	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return Row{}, reasonBadAmount
	}

	return Row{
		LGUName:     strings.TrimSpace(rec.LGU),
		Province:    optional(rec.Province),
		Year:        year,
		Amount:      amount,
		ContextPre:  optional(rec.ContextPre),
		ContextPost: optional(rec.ContextPost),
	}, ""
}

// parseYear accepts integral values, including float renderings such as
// "2020.0".
func parseYear(s string) (int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	if !d.IsInteger() {
		return 0, fmt.Errorf("year %q is not integral", s)
	}

	if d.LessThan(decimal.NewFromInt(1)) || d.GreaterThan(decimal.NewFromInt(9999)) {
		return 0, fmt.Errorf("year %q out of range", s)
	}

	return int(d.IntPart()), nil
}

// parseAmount reads a decimal amount, tolerating thousands separators and a
// peso prefix: "₱1,234,567.89" -> 1234567.89.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "₱")
	clean = strings.TrimPrefix(clean, "PHP")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")

	return decimal.NewFromString(clean)
}
