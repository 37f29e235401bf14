// Package error defines domain-specific errors for the inventory tracker.
package error

import "errors"

// Stats domain errors.
var (
	// ErrInvalidReferenceDate is returned when the reference date cannot be parsed.
	ErrInvalidReferenceDate = errors.New("invalid reference date, expected YYYY-MM-DD")

	// ErrInvalidTimezone is returned when the configured stats timezone is unknown.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrStatsSourceUnavailable is returned when items, categories or sources could not be fetched.
	ErrStatsSourceUnavailable = errors.New("stats inputs could not be fetched")

	// ErrRateLimited is returned when a client exceeds the stats request budget.
	ErrRateLimited = errors.New("too many requests")
)

// StatsErrorCode defines error codes for stats errors.
// Format: STS-XXYYYY where XX is category and YYYY is specific error.
type StatsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReferenceDate StatsErrorCode = "STS-010001"
	ErrCodeInvalidTimezone      StatsErrorCode = "STS-010002"
	ErrCodeRateLimited          StatsErrorCode = "STS-010003"

	// Upstream errors (02XXXX)
	ErrCodeStatsSourceUnavailable StatsErrorCode = "STS-020001"

	// Internal errors (99XXXX)
	ErrCodeStatsInternalError StatsErrorCode = "STS-990001"
)

// StatsError represents a stats error with code and message.
type StatsError struct {
	Code    StatsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatsError) Unwrap() error {
	return e.Err
}

// NewStatsError creates a new StatsError with the given code and message.
func NewStatsError(code StatsErrorCode, message string, err error) *StatsError {
	return &StatsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
