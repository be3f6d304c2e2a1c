package errors

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrorKind classifies a failure for stable testing and exit-code decisions
type ErrorKind string

// Error kinds for the different failure categories
const (
	ErrUnknown ErrorKind = "UNKNOWN"

	// Command line parsing or validation failed
	ErrArgument ErrorKind = "ARGUMENT"

	// Filesystem or stream operation failed
	ErrIO ErrorKind = "IO"

	// The reader side of our output went away
	ErrBrokenPipe ErrorKind = "BROKEN_PIPE"

	// Syntax or theme definitions could not be parsed, or the cache is unreadable
	ErrAssetLoad ErrorKind = "ASSET_LOAD"

	// Numeric or range option parsing failed
	ErrParse ErrorKind = "PARSE"

	// Configuration file could not be loaded
	ErrConfig ErrorKind = "CONFIG"
)

// TintError represents a structured error with a kind and details
type TintError struct {
	Kind    ErrorKind
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface. The kind is not part of the message
// since it ends up in front of users.
func (e *TintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *TintError) Unwrap() error {
	return e.Wrapped
}

// Is matches another TintError of the same kind
func (e *TintError) Is(target error) bool {
	var targetErr *TintError
	if errors.As(target, &targetErr) {
		return e.Kind == targetErr.Kind
	}
	return false
}

// New creates a new TintError with the given kind and message
func New(kind ErrorKind, message string) *TintError {
	return &TintError{
		Kind:    kind,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TintError with a formatted message
func Newf(kind ErrorKind, format string, args ...interface{}) *TintError {
	return &TintError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. I/O errors caused by a closed pipe are
// promoted to ErrBrokenPipe regardless of the requested kind.
func Wrap(err error, kind ErrorKind, message string) error {
	if err == nil {
		return nil
	}
	return &TintError{
		Kind:    promote(err, kind),
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, kind ErrorKind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &TintError{
		Kind:    promote(err, kind),
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// FromIO tags a raw I/O error, keeping the original error as cause
func FromIO(err error) error {
	if err == nil {
		return nil
	}
	var tintErr *TintError
	if errors.As(err, &tintErr) {
		return err
	}
	kind := ErrIO
	if isEPIPE(err) {
		kind = ErrBrokenPipe
	}
	return &TintError{
		Kind:    kind,
		Message: "io error",
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

func promote(err error, kind ErrorKind) ErrorKind {
	if IsBrokenPipe(err) {
		return ErrBrokenPipe
	}
	return kind
}

// WithDetail adds a detail to the error
func (e *TintError) WithDetail(key string, value interface{}) *TintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsKind checks if an error has a specific kind
func IsKind(err error, kind ErrorKind) bool {
	var tintErr *TintError
	if errors.As(err, &tintErr) {
		return tintErr.Kind == kind
	}
	return false
}

// GetKind returns the kind of an error, or ErrUnknown if not a TintError
func GetKind(err error) ErrorKind {
	var tintErr *TintError
	if errors.As(err, &tintErr) {
		return tintErr.Kind
	}
	return ErrUnknown
}

// Root returns the innermost cause of err.
func Root(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// IsBrokenPipe reports whether err was caused by writing to a closed pipe.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	if IsKind(err, ErrBrokenPipe) {
		return true
	}
	return isEPIPE(Root(err))
}

func isEPIPE(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
