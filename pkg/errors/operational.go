package errors

import (
	"fmt"
	"time"
)

// OperationalError represents enhanced error information for debugging.
//
// It wraps errors with operational context including the form ID, the
// field ID, and a timestamp. This enables better error tracking when a
// form definition fails to load or a draft fails to persist.
type OperationalError struct {
	Operation  string                 // What operation was being performed
	FormID     string                 // Which form
	FieldID    string                 // Which field (if applicable)
	Timestamp  time.Time              // When error occurred
	Attributes map[string]interface{} // Additional context (optional)
	Cause      error                  // Underlying error
}

// NewOperationalError creates an OperationalError wrapping an error.
//
// Returns nil if cause is nil (no error to wrap).
//
// Example:
//
//	if err != nil {
//	    return NewOperationalError("loading form definition", formID, fieldID, err)
//	}
func NewOperationalError(operation, formID, fieldID string, cause error) *OperationalError {
	if cause == nil {
		return nil
	}

	return &OperationalError{
		Operation: operation,
		FormID:    formID,
		FieldID:   fieldID,
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

// NewOperationalErrorWithAttrs creates an OperationalError with additional attributes.
//
// Returns nil if cause is nil (no error to wrap).
func NewOperationalErrorWithAttrs(operation, formID, fieldID string, cause error, attrs map[string]interface{}) *OperationalError {
	if cause == nil {
		return nil
	}

	return &OperationalError{
		Operation:  operation,
		FormID:     formID,
		FieldID:    fieldID,
		Timestamp:  time.Now(),
		Attributes: attrs,
		Cause:      cause,
	}
}

// Error implements the error interface.
//
// Format: "[timestamp] operation: form={id} field={id}: {cause}"
// If the field ID is empty, it's omitted from the message.
func (e *OperationalError) Error() string {
	if e == nil {
		return "<nil OperationalError>"
	}

	timestamp := e.Timestamp.Format(time.RFC3339)

	var msg string
	if e.FieldID != "" {
		msg = fmt.Sprintf("[%s] %s: form=%s field=%s: %v",
			timestamp,
			e.Operation,
			e.FormID,
			e.FieldID,
			e.Cause)
	} else {
		msg = fmt.Sprintf("[%s] %s: form=%s: %v",
			timestamp,
			e.Operation,
			e.FormID,
			e.Cause)
	}

	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *OperationalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
