package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/openaudit/internal/page"
)

const DefaultModel = "claude-sonnet-4"

// Analysis is a persisted provider response about a report or an LGU.
type Analysis struct {
	ID        int64
	ReportID  *int64
	LGUID     *int64
	Type      string
	Prompt    *string
	Response  string
	Model     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Request asks for an analysis of a report, an LGU, or both. When both are
// set the report's text is used as context.
type Request struct {
	ReportID     *int64
	LGUID        *int64
	Type         string
	CustomPrompt *string
	Model        string
}

// ReportText is the text carried by an audit report.
type ReportText struct {
	ID       int64
	Findings *string
	Raw      *string
}

// LGUSummary is the figure set used as context when analysing an LGU.
type LGUSummary struct {
	ID               int64
	Name             string
	Province         *string
	TransactionCount int64
	Total            decimal.Decimal
}

type ListFilter struct {
	LGUID    *int64
	ReportID *int64
	Type     *string
	Page     page.Page
}
