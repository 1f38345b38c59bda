package wire

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// integerText returns the textual integer carried by raw. The service sends
// integer-coded values either as JSON numbers or as JSON strings of digits, so
// both are accepted here and validated by the callers.
func integerText(field string, raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", unexpectedShape(field, raw)
	}
	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", malformedNumber(field, raw)
		}
		return s, nil
	case c == '-' || isDigit(c):
		return string(raw), nil
	default:
		return "", unexpectedShape(field, raw)
	}
}

// strconvIntBits bounds counts so they convert to int without overflow.
const strconvIntBits = strconv.IntSize - 1

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// Enum decodes a small wire integer that must be one of 0..n-1.
// Integers outside that range fail with ErrInvalidEnumValue; never clamped.
func Enum(field string, raw json.RawMessage, n uint8) (uint8, error) {
	s, err := integerText(field, raw)
	if err != nil {
		return 0, err
	}
	if len(s) > 1 && s[0] == '-' && isDigits(s[1:]) {
		return 0, invalidEnum(field, raw)
	}
	if !isDigits(s) {
		return 0, malformedNumber(field, raw)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v >= uint64(n) {
		return 0, invalidEnum(field, raw)
	}
	return uint8(v), nil
}

// Bool decodes the service's 0/1 boolean convention.
func Bool(field string, raw json.RawMessage) (bool, error) {
	v, err := Enum(field, raw, 2)
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// Uint decodes an unsigned integer sent as a string of ASCII digits (a bare
// JSON integer is accepted too). bitSize bounds the result like strconv.ParseUint.
func Uint(field string, raw json.RawMessage, bitSize int) (uint64, error) {
	s, err := integerText(field, raw)
	if err != nil {
		return 0, err
	}
	if !isDigits(s) {
		return 0, malformedNumber(field, raw)
	}
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, malformedNumber(field, raw)
	}
	return v, nil
}

// Timestamp decodes epoch seconds.
func Timestamp(field string, raw json.RawMessage) (time.Time, error) {
	v, err := Uint(field, raw, 63)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(v), 0).UTC(), nil
}

// String decodes a JSON string. null and other shapes are rejected.
func String(field string, raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", unexpectedShape(field, raw)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", unexpectedShape(field, raw)
	}
	return s, nil
}

// Flag decodes a JSON boolean.
func Flag(field string, raw json.RawMessage) (bool, error) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, unexpectedShape(field, raw)
	}
}

// IsNull reports whether raw is absent or the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || string(raw) == "null"
}
