package transaction

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an amount an LGU failed to liquidate in a given audit year.
type Transaction struct {
	ID          int64
	LGUID       int64
	ReportID    *int64
	Year        int
	Amount      decimal.Decimal // NUMERIC(15,2)
	ContextPre  *string
	ContextPost *string
	LGU         *LGU // Loaded via JOIN
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LGU is the owning local government as carried on a transaction listing.
type LGU struct {
	ID       int64
	Name     string
	Province *string
	Region   *string
	Type     *string
}

// Total sums the amounts of txs. An empty slice sums to zero.
func Total(txs []*Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}

	return total
}

// Years returns the distinct years present in txs, ascending.
func Years(txs []*Transaction) []int {
	seen := make(map[int]struct{}, len(txs))
	years := make([]int, 0)

	for _, tx := range txs {
		if _, ok := seen[tx.Year]; ok {
			continue
		}

		seen[tx.Year] = struct{}{}
		years = append(years, tx.Year)
	}

	slices.Sort(years)

	return years
}
