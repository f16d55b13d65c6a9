package analytics

import (
	"github.com/shopspring/decimal"
)

// Stats is the corpus-wide summary.
type Stats struct {
	TotalLGUs         int64
	TotalReports      int64
	TotalUnliquidated decimal.Decimal
	YearsCovered      []int
	ProvincesCount    int64
}

// YearGroup is one year's raw aggregate as read from the store.
type YearGroup struct {
	Year             int
	Total            decimal.Decimal
	TransactionCount int64
	LGUCount         int64
}

// YearTrend is a YearGroup with its mean amount.
type YearTrend struct {
	YearGroup
	Average decimal.Decimal
}

// YearTotal is the by-year aggregate exposed under /transactions.
type YearTotal struct {
	Year  int
	Total decimal.Decimal
	Count int64
}

// HeatmapCell is the summed amount for one province and year.
// Province is nil for LGUs without a recorded province.
type HeatmapCell struct {
	Province *string
	Year     int
	Total    decimal.Decimal
}

// LGUTotal is an LGU's summed amount and transaction count.
type LGUTotal struct {
	LGUID            int64
	Name             string
	Province         *string
	Total            decimal.Decimal
	TransactionCount int64
}

// ProvinceTotal is a province's summed amount and transaction count.
type ProvinceTotal struct {
	Province *string
	Total    decimal.Decimal
	Count    int64
}

// TopFilter selects the LGU ranking window.
type TopFilter struct {
	Limit int
	Year  *int
}

// ProvinceFilter selects the province aggregation.
type ProvinceFilter struct {
	Year              *int
	IncludeUnassigned bool
}

// HeatmapOptions controls whether LGUs without a province form their own row.
type HeatmapOptions struct {
	IncludeUnassigned bool
}
