// Package errors provides standardized error handling for SortPictures.
// It defines common error types, constants, and helper functions for
// consistent error creation, wrapping, and handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Configuration error kinds, all fatal before the session starts
	InvalidBinding
	EmptyInput
	OutOfRangeStart
	NotADirectory
	InvalidSort
	InvalidScale
	InvalidFilter
	InvalidConfig
	// Runtime error kinds, logged but never fatal during a session
	CommandFailed
	MoveFailed
	// File error kinds
	FileNotFound
	FileAccessDenied
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigError represents errors in the startup configuration: a malformed
// binding spec, an empty expanded file list, a bad sort name, and so on.
// Every ConfigError aborts startup before any window is shown.
type ConfigError struct {
	ApplicationError
	option string
}

// NewConfigError creates a new configuration error. option names the
// offending CLI option or config key, e.g. "--act" or "--start".
func NewConfigError(msg string, option string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		option: option,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.option != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.option, e.msg, e.err)
		}
		return fmt.Sprintf("%s: %s", e.option, e.msg)
	}
	return e.ApplicationError.Error()
}

// Option returns the CLI option associated with the error
func (e *ConfigError) Option() string {
	return e.option
}

// ActionError represents errors raised while a bound action runs: a failed
// spawn, a failed rename, permission denied. Action errors are surfaced to
// the console but never terminate the session.
type ActionError struct {
	ApplicationError
	path string
}

// NewActionError creates a new action error. path is the file the action was
// applied to.
func NewActionError(msg string, path string, kind ErrorKind, err error) *ActionError {
	return &ActionError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the action error message
func (e *ActionError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *ActionError) Path() string {
	return e.path
}

// FileError represents errors related to reading input files and directories
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// kinder is implemented by all error types in this package
type kinder interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first error in the chain from this package,
// or Unknown
func KindOf(err error) ErrorKind {
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}

// IsConfigError checks if the error aborts startup
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsInvalidBinding checks if the error is a malformed key-binding spec
func IsInvalidBinding(err error) bool {
	return KindOf(err) == InvalidBinding
}

// IsEmptyInput checks if the error is an empty expanded file list
func IsEmptyInput(err error) bool {
	return KindOf(err) == EmptyInput
}

// IsOutOfRangeStart checks if the error is a start offset outside the sequence
func IsOutOfRangeStart(err error) bool {
	return KindOf(err) == OutOfRangeStart
}

// IsNotADirectory checks if the error is a missing or non-directory move target
func IsNotADirectory(err error) bool {
	return KindOf(err) == NotADirectory
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	return KindOf(err) == FileNotFound
}
