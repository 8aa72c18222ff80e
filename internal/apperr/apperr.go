// Package apperr defines the error kinds handlers and stores return. The
// terminal error middleware maps each kind to an HTTP status.
package apperr

import (
	"errors" // Kind lookup through wrapped chains
	"fmt"    // Error formatting
)

// Kind classifies an application error
type Kind int

const (
	Unexpected     Kind = iota // Anything not classified below
	Validation                 // Malformed or missing input
	Duplicate                  // Unique constraint conflict
	Authentication             // Missing, malformed, expired or stale credential
	NotFound                   // Missing record or ownership mismatch
)

// UnexpectedMessage is the only message ever shown for Unexpected errors.
const UnexpectedMessage = "unexpected error occurred, please contact the administrator"

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Duplicate:
		return "duplicate"
	case Authentication:
		return "authentication"
	case NotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

// Error carries a kind, a client-facing message and an optional cause.
type Error struct {
	Kind    Kind   // Drives the HTTP status
	Message string // Safe to show to clients unless Kind is Unexpected
	Err     error  // Underlying cause, logged but never returned
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error without a cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap builds an Error around cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

func NewValidation(msg string) *Error     { return New(Validation, msg) }
func NewDuplicate(msg string) *Error      { return New(Duplicate, msg) }
func NewAuthentication(msg string) *Error { return New(Authentication, msg) }
func NewNotFound(msg string) *Error       { return New(NotFound, msg) }

// Internal wraps an unclassified failure. Its message never reaches clients.
func Internal(cause error) *Error {
	return Wrap(Unexpected, UnexpectedMessage, cause)
}

// KindOf reports the kind of err. Errors outside this package are Unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unexpected
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// PublicMessage returns the message safe to send to a client.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Unexpected && e.Message != "" {
		return e.Message
	}
	return UnexpectedMessage
}
