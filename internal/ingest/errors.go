package ingest

import "errors"

var (
	ErrRunInProgress = errors.New("another ingestion run holds the lock")
	ErrNoHeader      = errors.New("no header row with lgu, province, year and unliquidated columns")
)
