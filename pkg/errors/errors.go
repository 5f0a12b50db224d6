// Package errors provides custom error types for labelkit.
// Reconciliation itself never fails; these types describe the guard,
// parsing and configuration failures around it so callers can check them
// with errors.Is and errors.As.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors
var (
	// ErrNotFound indicates that a requested path or resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsafeOperation indicates a destructive operation on a directory
	// that is not marked as a disposable test area
	ErrUnsafeOperation = errors.New("unsafe operation")

	// ErrNotDirectory indicates a file path was given where a directory was required
	ErrNotDirectory = errors.New("not a directory")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// SafetyError is returned when a destructive filesystem operation targets a
// directory that does not carry the marker file.
type SafetyError struct {
	Operation string // "create", "clear", "show"
	Path      string
	Marker    string
}

// Error implements the error interface
func (e *SafetyError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("refusing to %s in %s: directory is not marked as a test area (missing %s)", e.Operation, e.Path, e.Marker)
	}
	return fmt.Sprintf("directory %s is not marked as a test area (missing %s)", e.Path, e.Marker)
}

// Is implements errors.Is support
func (e *SafetyError) Is(target error) bool {
	return target == ErrUnsafeOperation
}

// NewSafetyError creates a new SafetyError
func NewSafetyError(operation, path, marker string) *SafetyError {
	return &SafetyError{Operation: operation, Path: path, Marker: marker}
}

// NotDirectoryError is returned when a path points to a file but a directory is required
type NotDirectoryError struct {
	Path string
}

// Error implements the error interface
func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("path %s points to a file, but should point to a directory", e.Path)
}

// Is implements errors.Is support
func (e *NotDirectoryError) Is(target error) bool {
	return target == ErrNotDirectory
}

// NewNotDirectoryError creates a new NotDirectoryError
func NewNotDirectoryError(path string) *NotDirectoryError {
	return &NotDirectoryError{Path: path}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnsafe checks if an error was raised by the marker guard
func IsUnsafe(err error) bool {
	return errors.Is(err, ErrUnsafeOperation)
}

// IsNotDirectory checks if an error reports a file where a directory was expected
func IsNotDirectory(err error) bool {
	return errors.Is(err, ErrNotDirectory)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapConfig wraps an error as a ConfigError
func WrapConfig(component string, err error) error {
	if err == nil {
		return nil
	}
	return NewConfigError(component, err.Error(), err)
}
