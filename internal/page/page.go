package page

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page is an offset/limit window over a listing.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps the window: negative skips become zero and the limit
// falls back to DefaultLimit when unset, capped at MaxLimit.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}

	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}

	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	return p
}
