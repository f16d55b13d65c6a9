package analysis

import "errors"

var (
	ErrNotFound            = errors.New("analysis not found")
	ErrReportNotFound      = errors.New("report not found")
	ErrLGUNotFound         = errors.New("lgu not found")
	ErrTargetRequired      = errors.New("either report_id or lgu_id must be provided")
	ErrProviderUnavailable = errors.New("analysis provider credentials not configured")
)
