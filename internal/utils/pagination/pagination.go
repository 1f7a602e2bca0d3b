package pagination

import (
	"fmt"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a validated page/limit pair for offset pagination. Every paginated
// listing also reports a total row count so callers can render page controls.
type Params struct {
	Page  int
	Limit int
}

// New validates a page/limit pair.
func New(page, limit int) (Params, error) {
	if page < 1 {
		return Params{}, fmt.Errorf("page must be >= 1, got %d", page)
	}
	if limit < 1 || limit > MaxLimit {
		return Params{}, fmt.Errorf("limit must be between 1 and %d, got %d", MaxLimit, limit)
	}
	return Params{Page: page, Limit: limit}, nil
}

// FromStrings parses page/limit query parameters, applying defaults for the
// empty string. Malformed values are rejected rather than silently defaulted.
func FromStrings(pageStr, limitStr string) (Params, error) {
	page := DefaultPage
	limit := DefaultLimit

	if pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil {
			return Params{}, fmt.Errorf("invalid page %q", pageStr)
		}
		page = v
	}
	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil {
			return Params{}, fmt.Errorf("invalid limit %q", limitStr)
		}
		limit = v
	}
	return New(page, limit)
}

// Offset converts the one-based page into a row offset.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}
