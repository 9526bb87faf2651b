package services

import "fmt"

// ValidationError marks caller mistakes that should surface as 4xx and
// never be retried
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError marks a failed fetch from the external feed. The whole sync
// run aborts with nothing committed; the operator decides whether to
// re-trigger the window.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream fetch failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
