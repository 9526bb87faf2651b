package models

// Pagination defaults for the log listing endpoints
const (
	DefaultLogLimit = 100
	MaxLogLimit     = 1000
)

// Pagination describes an offset-based page of a filtered result set
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// NewPagination computes the pagination envelope for a returned page.
// HasMore is true when rows beyond this page match the same filter.
func NewPagination(total, limit, offset, returned int) Pagination {
	return Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+returned < total,
	}
}

// ClampLimit normalizes a caller-supplied page size
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLogLimit
	}
	if limit > MaxLogLimit {
		return MaxLogLimit
	}
	return limit
}

// ClampOffset normalizes a caller-supplied offset
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
