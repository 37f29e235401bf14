package error

import "errors"

// Source domain errors.
var (
	ErrSourceNotFound     = errors.New("source not found")
	ErrSourceNameExists   = errors.New("source name already exists")
	ErrSourceNameTooLong  = errors.New("source name too long")
	ErrSourceNameRequired = errors.New("source name is required")
)

// SourceErrorCode defines error codes for source errors.
type SourceErrorCode string

const (
	ErrCodeSourceNameTooLong   SourceErrorCode = "SRC-010001"
	ErrCodeSourceNameRequired  SourceErrorCode = "SRC-010002"
	ErrCodeSourceNameExists    SourceErrorCode = "SRC-010003"
	ErrCodeMissingSourceFields SourceErrorCode = "SRC-010004"
	ErrCodeSourceNotFound      SourceErrorCode = "SRC-040001"
)

// SourceError represents a source error with code and message.
type SourceError struct {
	Code    SourceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError with the given code and message.
func NewSourceError(code SourceErrorCode, message string, err error) *SourceError {
	return &SourceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
