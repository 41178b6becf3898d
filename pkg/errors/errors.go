// Package errors provides structured error handling for the sdui tree builder.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates malformed input to a setter or tree mutation.
	KindInvalidArgument
	// KindUnsupportedKind indicates a registry lookup for an unregistered node kind.
	KindUnsupportedKind
	// KindUnknownOperation indicates a builder short-name that resolves to nothing.
	KindUnknownOperation
	// KindValidation indicates one or more collected validation errors.
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindUnsupportedKind:
		return "unsupported kind"
	case KindUnknownOperation:
		return "unknown operation"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the sdui builder.
type Error struct {
	// Op is the operation that failed (e.g., "registry.Create").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidArgument returns a KindInvalidArgument error for op.
func InvalidArgument(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindInvalidArgument, Err: fmt.Errorf(format, args...)}
}

// UnsupportedKind returns a KindUnsupportedKind error for an unregistered kind.
func UnsupportedKind(op, kind string) *Error {
	return &Error{Op: op, Kind: KindUnsupportedKind, Err: fmt.Errorf("node kind %q is not registered", kind)}
}

// UnknownOperation returns a KindUnknownOperation error for a short name that
// resolves to no registered kind.
func UnknownOperation(op, name string) *Error {
	return &Error{Op: op, Kind: KindUnknownOperation, Err: fmt.Errorf("no component named %q is available", name)}
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ValidationError carries the complete ordered list of validation errors
// gathered from a tree walk. It is never raised with a partial list.
type ValidationError struct {
	// Op is the operation that ran validation (e.g., "builder.Build").
	Op string
	// Errors holds every collected error string, in depth-first pre-order.
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s [validation]: %s", e.Op, strings.Join(e.Errors, "; "))
}

// IsValidation reports whether any error in err's chain is a *ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return stderrors.As(err, &e)
}
