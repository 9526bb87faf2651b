package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		offset   int
		returned int
		hasMore  bool
	}{
		{"first of many pages", 100, 10, 0, 10, true},
		{"middle page", 100, 10, 50, 10, true},
		{"last partial page", 100, 10, 95, 5, false},
		{"exact last page", 100, 10, 90, 10, false},
		{"single page", 5, 10, 0, 5, false},
		{"empty result", 0, 10, 0, 0, false},
		{"offset past the end", 100, 10, 200, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, tt.limit, tt.offset, tt.returned)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.offset, p.Offset)
			assert.Equal(t, tt.hasMore, p.HasMore)
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLogLimit, ClampLimit(0))
	assert.Equal(t, DefaultLogLimit, ClampLimit(-5))
	assert.Equal(t, 50, ClampLimit(50))
	assert.Equal(t, MaxLogLimit, ClampLimit(MaxLogLimit))
	assert.Equal(t, MaxLogLimit, ClampLimit(MaxLogLimit+1))
}

func TestClampOffset(t *testing.T) {
	assert.Equal(t, 0, ClampOffset(-1))
	assert.Equal(t, 0, ClampOffset(0))
	assert.Equal(t, 42, ClampOffset(42))
}

func TestSyncFormValidate(t *testing.T) {
	form := SyncForm{From: "2026-01-14", To: "2026-01-15"}
	assert.Empty(t, form.Validate())

	form = SyncForm{To: "2026-01-15"}
	assert.Equal(t, []string{"from is required"}, form.Validate())

	form = SyncForm{From: "2026-01-14"}
	assert.Equal(t, []string{"to is required"}, form.Validate())

	form = SyncForm{}
	assert.Len(t, form.Validate(), 2)
}
