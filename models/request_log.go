package models

import "time"

// RequestLogEntry records one HTTP request/response pair handled by the
// backend, captured by the request logging middleware.
type RequestLogEntry struct {
	ID           int64     `json:"id" db:"id"`
	Method       string    `json:"method" db:"method"`
	URL          string    `json:"url" db:"url"`
	Path         string    `json:"path" db:"path"`
	Headers      string    `json:"headers" db:"headers"`
	Body         string    `json:"body" db:"body"`
	StatusCode   int       `json:"status_code" db:"status_code"`
	Response     string    `json:"response" db:"response"`
	ResponseTime int64     `json:"response_time" db:"response_time"`
	IPAddress    string    `json:"ip_address" db:"ip_address"`
	UserAgent    string    `json:"user_agent" db:"user_agent"`
	Username     string    `json:"username" db:"username"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RequestLogFilter narrows request log queries. Path matches as a substring;
// Method and StatusCode match exactly.
type RequestLogFilter struct {
	Method     string
	StatusCode int
	Path       string
	Limit      int
	Offset     int
}
