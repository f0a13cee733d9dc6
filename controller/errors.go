package controller

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingField a form field is empty, not a number, or (for the amount) zero
	ErrMissingField = errors.New("missing field")

	// ErrNegativeAmount the amount parsed but is below zero
	ErrNegativeAmount = errors.New("negative amount")

	// ErrConversionFailed no rate could be resolved for the pair
	ErrConversionFailed = errors.New("conversion failed")
)

// User-facing messages
const (
	MessageMissingField     = "Please fill in all fields"
	MessageNegativeAmount   = "Amount must not be negative"
	MessageConversionFailed = "Failed to fetch exchange rates. Please try again."
)

// ValidationError rejected form input, detected before any rate lookup
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v", strings.ToLower(e.Field), e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Message translates a Convert error into the single line shown to the user.
// Resolution failures are never distinguished by cause.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNegativeAmount):
		return MessageNegativeAmount
	case errors.Is(err, ErrMissingField):
		return MessageMissingField
	default:
		return MessageConversionFailed
	}
}
