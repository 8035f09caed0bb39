package services

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing required field. The message is safe to
// show to the caller.
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

// InvalidDateError carries the date-like input that failed normalization.
type InvalidDateError struct {
	Input string
}

func (err *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %s", err.Input)
}

// StoreError wraps any persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (err *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", err.Op, err.Err)
}

func (err *StoreError) Unwrap() error {
	return err.Err
}

var (
	ErrDateAndMealRequired = &ValidationError{Message: "date and meal are required"}
	ErrDateRequired        = &ValidationError{Message: "date is required"}
	ErrExportRangeInvalid  = &ValidationError{Message: "invalid range"}
)

func IsClientError(err error) bool {
	var validationErr *ValidationError
	var dateErr *InvalidDateError
	return errors.As(err, &validationErr) || errors.As(err, &dateErr)
}
