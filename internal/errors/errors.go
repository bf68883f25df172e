package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput        = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON       = errors.New("invalid JSON format")
	ErrMultipleJSON      = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound      = errors.New("file not found")
	ErrFileEmpty         = errors.New("file is empty")
	ErrNoInput           = errors.New("no input provided: please specify a file with -i or pipe data to stdin")
	ErrInvalidFilePath   = errors.New("invalid file path")
	ErrStructureConflict = errors.New("paths describe incompatible container types")
	ErrSheetNotFound     = errors.New("sheet not found in workbook")
	ErrSheetEmpty        = errors.New("sheet has no header row")
)

// ErrorType categorizes errors by pipeline stage
type ErrorType string

const (
	ErrorTypeInput     ErrorType = "input"
	ErrorTypeParsing   ErrorType = "parsing"
	ErrorTypeStructure ErrorType = "structure"
	ErrorTypeSheet     ErrorType = "sheet"
	ErrorTypeOutput    ErrorType = "output"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewStructureError creates a new error for path sequences that cannot
// describe a single consistent value tree
func NewStructureError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeStructure,
		Message: message,
		Err:     err,
	}
}

// NewStructureConflict creates a structure error pointing at the
// offending serialized path
func NewStructureConflict(path string, detail string) *AppError {
	return &AppError{
		Type:    ErrorTypeStructure,
		Message: fmt.Sprintf("conflict at path %q: %s", path, detail),
		Err:     ErrStructureConflict,
	}
}

// NewSheetError creates a new error related to workbook reading/writing
func NewSheetError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSheet,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeStructure:
			return fmt.Sprintf("Structure error: %s", appErr.Message)
		case ErrorTypeSheet:
			return fmt.Sprintf("Spreadsheet error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON document or use --ndjson."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrStructureConflict) {
		return "Error: The sheet contents cannot be assembled into a single JSON structure."
	}
	if errors.Is(err, ErrSheetNotFound) {
		return "Error: The requested sheet does not exist in the workbook."
	}
	if errors.Is(err, ErrSheetEmpty) {
		return "Error: The sheet has no header row to read."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
