package models

import "time"

// Resolution outcomes recorded in the resolution log
const (
	ResolutionStatusSuccess  = "success"
	ResolutionStatusNotFound = "not_found"
	ResolutionStatusError    = "error"
)

// ResolutionLogEntry records one inbound lookup against the mapping store.
// Entries are append-only and written after the response has been sent.
type ResolutionLogEntry struct {
	ID            int64     `json:"id" db:"id"`
	Method        string    `json:"method" db:"method"`
	URL           string    `json:"url" db:"url"`
	Source        string    `json:"source" db:"source"`
	Params        string    `json:"params" db:"params"`
	ResolvedSubID string    `json:"resolved_sub_id" db:"resolved_sub_id"`
	Status        string    `json:"status" db:"status"`
	RedirectURL   string    `json:"redirect_url" db:"redirect_url"`
	ErrorMessage  string    `json:"error_message" db:"error_message"`
	IPAddress     string    `json:"ip_address" db:"ip_address"`
	UserAgent     string    `json:"user_agent" db:"user_agent"`
	DurationMs    int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ResolutionLogFilter narrows resolution log queries. Source matches as a
// substring; Found maps onto the status column (true = success, false =
// anything else).
type ResolutionLogFilter struct {
	Source string
	Found  *bool
	Limit  int
	Offset int
}
