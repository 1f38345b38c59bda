package wire

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Indexed decodes a collection the service sends as [] when empty and as an
// object keyed by stringified non-negative integers otherwise. Element values
// are returned undecoded, in the object's own key order; keys are not sorted.
// Any other shape fails with ErrUnexpectedShape.
func Indexed(field string, raw json.RawMessage) ([]json.RawMessage, error) {
	return collection(field, raw, func(key string) bool {
		if !isDigits(key) {
			return false
		}
		_, err := strconv.ParseUint(key, 10, 64)
		return err == nil
	})
}

// Keyed is Indexed for collections keyed by arbitrary strings (tag names).
func Keyed(field string, raw json.RawMessage) ([]json.RawMessage, error) {
	return collection(field, raw, func(string) bool { return true })
}

func collection(field string, raw json.RawMessage, validKey func(string) bool) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, unexpectedShape(field, raw)
	}
	switch tok {
	case json.Delim('['):
		if dec.More() {
			return nil, unexpectedShape(field, raw)
		}
		if _, err := dec.Token(); err != nil {
			return nil, unexpectedShape(field, raw)
		}
		return []json.RawMessage{}, nil

	case json.Delim('{'):
		out := []json.RawMessage{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, unexpectedShape(field, raw)
			}
			key, ok := kt.(string)
			if !ok || !validKey(key) {
				return nil, unexpectedShape(field, raw)
			}
			var v json.RawMessage
			if err := dec.Decode(&v); err != nil {
				return nil, unexpectedShape(field, raw)
			}
			out = append(out, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, unexpectedShape(field, raw)
		}
		return out, nil

	default:
		return nil, unexpectedShape(field, raw)
	}
}
