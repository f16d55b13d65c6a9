package ingest

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is one extract row as read, before validation. Line is the 1-based
// line (or sheet row) the record came from.
type Record struct {
	Line        int
	LGU         string
	Province    string
	Year        string
	Amount      string
	ContextPre  string
	ContextPost string
}

// Row is a validated record.
type Row struct {
	LGUName     string
	Province    *string
	Year        int
	Amount      decimal.Decimal
	ContextPre  *string
	ContextPost *string
}

// RowSource yields records until it returns io.EOF.
type RowSource interface {
	Next() (Record, error)
}

// Summary reports what a run did. LGUs counts distinct (name, province)
// pairs touched, whether found or created.
type Summary struct {
	RunID        uuid.UUID
	Rows         int
	Skipped      int
	LGUs         int
	LGUsCreated  int
	Transactions int
	Batches      int
}
