package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnsupportedFormat    = errors.New("unsupported format")
	ErrStructuredExtraction = errors.New("structured extraction failed")
	ErrInvalidDate          = errors.New("invalid date")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// UnsupportedFormatError is returned before any model call when the input
// document extension is not one we can read.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q (%s): please use a PDF or DOCX file", e.Ext, e.Path)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// StructuredExtractionError means no JSON value could be recovered from a
// model response. Raw holds the full response text for diagnosis.
type StructuredExtractionError struct {
	Kind  string // "object" | "array"
	Raw   string
	Cause error
}

func (e *StructuredExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not parse structured JSON %s from model response: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("could not parse structured JSON %s from model response", e.Kind)
}

func (e *StructuredExtractionError) Unwrap() error {
	return e.Cause
}

func (e *StructuredExtractionError) Is(target error) bool {
	return target == ErrStructuredExtraction
}

// InvalidDateError covers a malformed plan start date or a task offset that
// is not a non-negative integer.
type InvalidDateError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}
