// Package errors provides the error taxonomy of the client SDK.
// Every failed operation surfaces exactly one Kind so callers can tell a
// network problem from a service-reported failure or an unexpected payload.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failed operation.
type Kind int

const (
	// Transport covers connection failures, timeouts, cancellation and
	// non-2xx responses without a service error header.
	Transport Kind = iota

	// Decode means the response body was not the shape or value range the
	// operation expects.
	Decode

	// Encode means the request could not be built: invalid input, or the
	// session is not in a state that allows the call.
	Encode

	// Protocol means the service reported an error through its headers.
	Protocol
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Transport:
		return "Transport"
	case Decode:
		return "Decode"
	case Encode:
		return "Encode"
	case Protocol:
		return "Protocol"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the single error type returned by client operations.
type Error struct {
	Kind       Kind
	Op         string // operation name, e.g. "get"
	StatusCode int    // HTTP status (0 when no response was received)
	Code       uint   // service error code (Protocol only)
	Message    string // service error message (Protocol only)
	Err        error  // underlying cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == Protocol:
		return fmt.Sprintf("%s: [%s] code %d: %s", e.Op, e.Kind, e.Code, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: [%s] HTTP %d: %v", e.Op, e.Kind, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s: [%s] %v", e.Op, e.Kind, e.Err)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a network-level failure.
func NewTransportError(op string, err error) *Error {
	return &Error{Kind: Transport, Op: op, Err: err}
}

// NewDecodeError wraps a response body that could not be decoded.
func NewDecodeError(op string, err error) *Error {
	return &Error{Kind: Decode, Op: op, Err: err}
}

// NewEncodeError wraps a request that could not be built.
func NewEncodeError(op string, err error) *Error {
	return &Error{Kind: Encode, Op: op, Err: err}
}

// NewProtocolError records a service-reported failure.
func NewProtocolError(op string, status int, code uint, message string) *Error {
	return &Error{Kind: Protocol, Op: op, StatusCode: status, Code: code, Message: message}
}

// KindOf returns the kind of err and whether err carries one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err is an *Error of kind k.
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
