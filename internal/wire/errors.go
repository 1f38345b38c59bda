// Package wire converts between domain values and the reading-list service's
// loosely typed JSON: digit-string identifiers, 0/1 booleans, small-integer
// enums and collections that are an empty array when empty but an object keyed
// by stringified indices otherwise.
//
// Everything here is pure and safe for concurrent use.
package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Failure reasons carried by FieldError.
var (
	ErrInvalidEnumValue = errors.New("invalid enum value")
	ErrMalformedNumber  = errors.New("malformed number")
	ErrUnexpectedShape  = errors.New("unexpected shape")
	ErrMissingField     = errors.New("missing field")
)

const maxRawInError = 64

// FieldError identifies the record, field and raw wire value that failed to
// decode. Err is one of the sentinel reasons above, possibly wrapping a nested
// FieldError or a lower level cause.
type FieldError struct {
	Entity string
	Field  string
	Raw    string
	Err    error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString("decode ")
	switch {
	case e.Entity != "" && e.Field != "":
		b.WriteString(e.Entity + "." + e.Field)
	case e.Entity != "":
		b.WriteString(e.Entity)
	default:
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Raw != "" {
		raw := e.Raw
		if len(raw) > maxRawInError {
			raw = raw[:maxRawInError] + "..."
		}
		fmt.Fprintf(&b, " (raw %s)", raw)
	}
	return b.String()
}

// Unwrap returns the failure reason.
func (e *FieldError) Unwrap() error { return e.Err }

func invalidEnum(field string, raw []byte) error {
	return &FieldError{Field: field, Raw: string(raw), Err: ErrInvalidEnumValue}
}

func malformedNumber(field string, raw []byte) error {
	return &FieldError{Field: field, Raw: string(raw), Err: ErrMalformedNumber}
}

func unexpectedShape(field string, raw []byte) error {
	return &FieldError{Field: field, Raw: string(raw), Err: ErrUnexpectedShape}
}

func missingField(entity, field string) error {
	return &FieldError{Entity: entity, Field: field, Err: ErrMissingField}
}
