// Package param parses path and query parameters. Every Optional* helper
// returns nil for an absent or empty value and an error for a malformed one.
package param

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/openaudit/internal/page"
)

// ID reads the int64 path parameter name.
func ID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return id, nil
}

func OptionalString(r *http.Request, key string) *string {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return nil
	}

	return &s
}

func OptionalInt(r *http.Request, key string) (*int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}

	return &n, nil
}

func OptionalInt64(r *http.Request, key string) (*int64, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}

	return &n, nil
}

func OptionalDecimal(r *http.Request, key string) (*decimal.Decimal, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}

	return &d, nil
}

// Bool reads key as a boolean, defaulting to false.
func Bool(r *http.Request, key string) (bool, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s", key)
	}

	return b, nil
}

// Page reads skip and limit. Normalisation is left to the services.
func Page(r *http.Request) (page.Page, error) {
	var p page.Page

	skip, err := OptionalInt(r, "skip")
	if err != nil {
		return p, err
	}

	limit, err := OptionalInt(r, "limit")
	if err != nil {
		return p, err
	}

	if skip != nil {
		if *skip < 0 {
			return p, fmt.Errorf("invalid skip")
		}

		p.Skip = *skip
	}

	if limit != nil {
		if *limit <= 0 {
			return p, fmt.Errorf("invalid limit")
		}

		p.Limit = *limit
	}

	return p, nil
}
