package topic

import (
	"time"

	"github.com/shopspring/decimal"
)

// Topic is a recurring theme extracted from report text.
type Topic struct {
	ID          int64
	Number      int
	Description string
	Terms       *string
	Prevalence  *decimal.Decimal // NUMERIC(5,4)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Analysis summarises how a topic weighs across the reports tagged with it.
// AverageProportion is nil when no report carries the topic.
type Analysis struct {
	Topic             *Topic
	ReportCount       int64
	AverageProportion *decimal.Decimal
}
