package model

import "fmt"

// ValidationError represents the first validation rule an invoice
// violated. The message is the user-visible string shown verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ParseError represents a malformed or structurally invalid
// invoice/options document. Callers keep their previous valid state
// when one is returned.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(message string, cause error) *ParseError {
	return &ParseError{Message: message, Cause: cause}
}

// GenerateError represents a failure from the generation engine,
// tagged with the failing operation category (generate, export,
// batch, plugin, template, preview).
type GenerateError struct {
	Op      string
	Message string
	Cause   error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s (%v)", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}

// NewGenerateError creates a new generation error
func NewGenerateError(op, message string, cause error) *GenerateError {
	return &GenerateError{Op: op, Message: message, Cause: cause}
}
