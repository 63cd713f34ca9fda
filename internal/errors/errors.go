package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrNotObject       = errors.New("document root is not a JSON object")
	ErrKeyNotFound     = errors.New("key not found")
	ErrInvalidPath     = errors.New("path descends into a value that is not an object")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypePath    ErrorType = "path"
	ErrorTypeMerge   ErrorType = "merge"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeUnknown ErrorType = "unknown"
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

// PathError reports the segment at which a key path stopped resolving.
// Kind is ErrKeyNotFound or ErrInvalidPath, so errors.Is works on either.
type PathError struct {
	Kind    error
	Segment string
	Path    string
	// Found names the kind of value reached when Kind is ErrInvalidPath
	Found string
}

// Error implements error interface
func (e *PathError) Error() string {
	if errors.Is(e.Kind, ErrInvalidPath) {
		return fmt.Sprintf("cannot look up key %q in %s value", e.Segment, e.Found)
	}
	return fmt.Sprintf("key %q not found", e.Segment)
}

// Unwrap returns the sentinel kind
func (e *PathError) Unwrap() error {
	return e.Kind
}

// NewKeyNotFound creates a PathError for a segment missing from an object
func NewKeyNotFound(segment, path string) *PathError {
	return &PathError{Kind: ErrKeyNotFound, Segment: segment, Path: path}
}

// NewInvalidPath creates a PathError for a segment looked up in a non-object
func NewInvalidPath(segment, path, found string) *PathError {
	return &PathError{Kind: ErrInvalidPath, Segment: segment, Path: path, Found: found}
}

// NewInputError creates a new error related to loading a document
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

// NewPathError creates a new error for a key path that does not resolve
func NewPathError(key string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypePath,
		Message: key,
		Err:     err,
	}
}

// NewMergeError creates a new error related to merging documents
func NewMergeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeMerge,
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

// NewConfigError creates a new error related to configuration
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
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
		case ErrorTypePath:
			var pathErr *PathError
			if errors.As(appErr.Err, &pathErr) {
				return fmt.Sprintf("Key not found in source file: %s (%s)", appErr.Message, pathErr.Error())
			}
			return fmt.Sprintf("Key not found in source file: %s", appErr.Message)
		case ErrorTypeMerge:
			return fmt.Sprintf("Merge error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
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
		return "Error: Multiple JSON values found. Please provide a single JSON object."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrNotObject) {
		return "Error: The document must be a JSON object at the top level."
	}
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("Key not found in source file: %s (%s)", pathErr.Path, pathErr.Error())
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
