package lgu

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
)

// DefaultReportType is the report type assigned when none is recorded.
const DefaultReportType = "executive_summary"

// LGU is a local government unit. (Name, Province) is unique in the store.
type LGU struct {
	ID        int64
	Name      string
	Province  *string
	Region    *string
	Type      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Report is an audit report filed for an LGU in a given year.
type Report struct {
	ID           int64
	LGUID        int64
	Year         int
	Type         string
	FilePath     *string
	RawText      *string
	FindingsText *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Detail is an LGU together with its own transactions and reports.
// Totals are computed in process from Transactions.
type Detail struct {
	LGU               *LGU
	TotalUnliquidated decimal.Decimal
	YearsWithData     []int
	Distribution      []analytics.BucketCount
	Transactions      []*transaction.Transaction
	Reports           []*Report
}
