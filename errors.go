package client

import (
	"errors"

	clierr "github.com/mycelian/readlater/client/internal/errors"
	"github.com/mycelian/readlater/client/internal/types"
	"github.com/mycelian/readlater/client/internal/wire"
)

// Error is returned by every Client operation. Its Kind tells a network
// failure (Transport) from a bad payload (Decode), a request that could not
// be built (Encode) and a service-reported failure (Protocol).
type (
	Error     = clierr.Error
	ErrorKind = clierr.Kind
)

const (
	KindTransport = clierr.Transport
	KindDecode    = clierr.Decode
	KindEncode    = clierr.Encode
	KindProtocol  = clierr.Protocol
)

// FieldError locates a Decode failure: the record, the field and the raw
// value that did not fit.
type FieldError = wire.FieldError

// Decode reasons, matched with errors.Is.
var (
	ErrInvalidEnumValue = wire.ErrInvalidEnumValue
	ErrMalformedNumber  = wire.ErrMalformedNumber
	ErrUnexpectedShape  = wire.ErrUnexpectedShape
	ErrMissingField     = wire.ErrMissingField
	ErrBadErrorCode     = clierr.ErrBadErrorCode
)

// Caller misuse, reported as Encode errors.
var (
	ErrNotAuthorized      = types.ErrNotAuthorized
	ErrNoPendingCode      = types.ErrNoPendingCode
	ErrMissingConsumerKey = errors.New("consumer key cannot be empty")
)

// IsProtocol reports whether err is a service-reported failure and returns
// its code and message.
func IsProtocol(err error) (code uint, message string, ok bool) {
	var e *clierr.Error
	if errors.As(err, &e) && e.Kind == clierr.Protocol {
		return e.Code, e.Message, true
	}
	return 0, "", false
}

// IsTransport reports whether err is a network or HTTP status failure.
func IsTransport(err error) bool { return clierr.Is(err, clierr.Transport) }

// IsDecode reports whether err is a response that did not decode.
func IsDecode(err error) bool { return clierr.Is(err, clierr.Decode) }

// IsEncode reports whether err is a request that could not be built.
func IsEncode(err error) bool { return clierr.Is(err, clierr.Encode) }
