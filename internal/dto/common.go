package dto

// DateFormat is the wire format for voucher dates and ledger date filters.
const DateFormat = "2006-01-02"

// PaginatedResponse wraps one page of items together with the total number of
// rows matching the same filter, so the caller can render page controls.
type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
}

// NewPaginatedResponse builds a PaginatedResponse, normalising a nil slice to
// an empty one so the JSON is always an array.
func NewPaginatedResponse[T any](items []T, totalCount int64) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{Items: items, TotalCount: totalCount}
}
