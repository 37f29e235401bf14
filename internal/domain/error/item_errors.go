// Package error defines domain-specific errors for the inventory tracker.
package error

import "errors"

// Item domain errors.
var (
	// ErrItemNotFound is returned when an item is not found in the system.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNameRequired is returned when an item is created without a name.
	ErrItemNameRequired = errors.New("item name is required")

	// ErrItemNameTooLong is returned when the item name exceeds the maximum length.
	ErrItemNameTooLong = errors.New("item name too long")

	// ErrNegativePrice is returned when a purchase or selling price is negative.
	ErrNegativePrice = errors.New("prices must not be negative")

	// ErrInvalidItemStatus is returned when the status is not available or sold.
	ErrInvalidItemStatus = errors.New("invalid item status")

	// ErrInvalidSoldAt is returned when the sale timestamp cannot be parsed.
	ErrInvalidSoldAt = errors.New("invalid sold_at timestamp")

	// ErrInvalidCommissionType is returned when the commission type is not amount or percentage.
	ErrInvalidCommissionType = errors.New("invalid commission type")

	// ErrNegativeConsignment is returned when a consignor amount or commission is negative.
	ErrNegativeConsignment = errors.New("consignor amount and commission must not be negative")
)

// ItemErrorCode defines error codes for item errors.
// Format: ITM-XXYYYY where XX is category and YYYY is specific error.
type ItemErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeItemNameRequired      ItemErrorCode = "ITM-010001"
	ErrCodeItemNameTooLong       ItemErrorCode = "ITM-010002"
	ErrCodeNegativePrice         ItemErrorCode = "ITM-010003"
	ErrCodeInvalidItemStatus     ItemErrorCode = "ITM-010004"
	ErrCodeInvalidSoldAt         ItemErrorCode = "ITM-010005"
	ErrCodeInvalidCommissionType ItemErrorCode = "ITM-010006"
	ErrCodeNegativeConsignment   ItemErrorCode = "ITM-010007"
	ErrCodeMissingItemFields     ItemErrorCode = "ITM-010008"
	ErrCodeUnknownCategory       ItemErrorCode = "ITM-010009"
	ErrCodeUnknownSource         ItemErrorCode = "ITM-010010"
	ErrCodeInvalidItemID         ItemErrorCode = "ITM-010011"

	// Not found errors (04XXXX)
	ErrCodeItemNotFound ItemErrorCode = "ITM-040001"
)

// ItemError represents an item error with code and message.
type ItemError struct {
	Code    ItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// NewItemError creates a new ItemError with the given code and message.
func NewItemError(code ItemErrorCode, message string, err error) *ItemError {
	return &ItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
