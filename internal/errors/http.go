package errors

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Service error headers. A present error code marks a failed call no matter
// what the status line or body says.
const (
	HeaderErrorCode = "X-Error-Code"
	HeaderError     = "X-Error"
)

// UnknownProtocolError is the message used when the service sends an error
// code without a message.
const UnknownProtocolError = "unknown protocol error"

// ErrBadErrorCode is wrapped by the Decode error returned when X-Error-Code
// is present but not an unsigned integer.
var ErrBadErrorCode = fmt.Errorf("malformed %s header", HeaderErrorCode)

// FromResponse classifies a completed HTTP exchange. It returns nil when the
// exchange succeeded and the body should be decoded.
//
// Error headers win over the status code: a 200 carrying X-Error-Code is a
// Protocol error. A non-2xx status without error headers is a Transport error.
func FromResponse(op string, status int, header http.Header) *Error {
	if values := header.Values(HeaderErrorCode); len(values) > 0 {
		raw := strings.TrimSpace(values[0])
		code, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return &Error{
				Kind:       Decode,
				Op:         op,
				StatusCode: status,
				Err:        fmt.Errorf("%w: %q", ErrBadErrorCode, raw),
			}
		}
		msg := strings.TrimSpace(header.Get(HeaderError))
		if msg == "" {
			msg = UnknownProtocolError
		}
		return NewProtocolError(op, status, uint(code), msg)
	}
	if status < 200 || status > 299 {
		return &Error{
			Kind:       Transport,
			Op:         op,
			StatusCode: status,
			Err:        fmt.Errorf("unexpected status %s", http.StatusText(status)),
		}
	}
	return nil
}
