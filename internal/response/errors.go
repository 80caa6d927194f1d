package response

import (
	"errors"
	"fmt"
)

// Error represents a derived statistic that cannot be computed from the
// reconstructed windows.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Details contains additional context.
	Details map[string]string
}

// ErrorCode categorizes reconstruction errors.
type ErrorCode string

const (
	// ErrCodeInvalidRecords indicates too few resolvable windows for a distribution.
	ErrCodeInvalidRecords ErrorCode = "INVALID_RECORDS"

	// ErrCodeInvalidBinWidth indicates a histogram bin width that is not positive.
	ErrCodeInvalidBinWidth ErrorCode = "INVALID_BIN_WIDTH"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidRecords reports whether err is an INVALID_RECORDS error.
// Uses errors.As to handle wrapped errors.
func IsInvalidRecords(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == ErrCodeInvalidRecords
	}
	return false
}

// IsInvalidBinWidth reports whether err is an INVALID_BIN_WIDTH error.
func IsInvalidBinWidth(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == ErrCodeInvalidBinWidth
	}
	return false
}

// NewInvalidRecordsError creates an Error for a record set without any
// resolvable window.
func NewInvalidRecordsError(records, windows int) *Error {
	return &Error{
		Code:    ErrCodeInvalidRecords,
		Message: fmt.Sprintf("no resolvable response window in %d records", records),
		Details: map[string]string{
			"records": fmt.Sprintf("%d", records),
			"windows": fmt.Sprintf("%d", windows),
		},
	}
}

// NewBinWidthError creates an Error for a non-positive bin width.
func NewBinWidthError(binWidth any) *Error {
	return &Error{
		Code:    ErrCodeInvalidBinWidth,
		Message: fmt.Sprintf("bin width must be positive, got %v", binWidth),
		Details: map[string]string{
			"bin_width": fmt.Sprintf("%v", binWidth),
		},
	}
}
