package models

import "time"

// MappingRecord is the latest known sub id observed for a traffic source.
// There is at most one live record per source; event_time only ever moves
// forward.
type MappingRecord struct {
	ID         int64     `json:"id" db:"id"`
	Source     string    `json:"source" db:"source"`
	SubID      string    `json:"sub_id" db:"sub_id"`
	CountryTag string    `json:"country_tag" db:"country_tag"`
	EventTime  time.Time `json:"event_time" db:"event_time"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// RawClick is one row of the upstream feed after decoding, before merging.
type RawClick struct {
	Source     string    `json:"source"`
	SubID      string    `json:"sub_id"`
	CountryTag string    `json:"country_tag"`
	EventTime  time.Time `json:"event_time"`
}

// SyncForm carries the date window of an ingestion trigger. The upstream
// contract fixes the format; only presence is checked on this side.
type SyncForm struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Validate checks that both window boundaries are present
func (f *SyncForm) Validate() []string {
	var errors []string

	if f.From == "" {
		errors = append(errors, "from is required")
	}
	if f.To == "" {
		errors = append(errors, "to is required")
	}

	return errors
}

// SyncResult summarises one completed ingestion run
type SyncResult struct {
	RunID             string `json:"run_id"`
	TotalFromUpstream int    `json:"total_from_api"`
	Processed         int    `json:"processed"`
	Inserted          int    `json:"inserted"`
	Updated           int    `json:"updated"`
	SourcesProcessed  int    `json:"sources_processed"`
}
