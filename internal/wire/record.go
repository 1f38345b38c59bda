package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Record decodes one JSON object by field name. Field order and unknown fields
// are irrelevant. The first failure is kept and every later accessor becomes a
// no-op returning the zero value, so a decode function reads its fields in
// sequence and checks Err once at the end.
type Record struct {
	entity string
	fields map[string]json.RawMessage
	err    error
}

// NewRecord parses raw as a JSON object describing entity.
func NewRecord(entity string, raw json.RawMessage) *Record {
	r := &Record{entity: entity}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		r.err = &FieldError{Entity: entity, Raw: string(trimmed), Err: ErrUnexpectedShape}
		return r
	}
	if err := json.Unmarshal(trimmed, &r.fields); err != nil {
		r.err = &FieldError{Entity: entity, Raw: string(trimmed), Err: fmt.Errorf("%w: %v", ErrUnexpectedShape, err)}
	}
	return r
}

// Err returns the first failure, if any.
func (r *Record) Err() error { return r.err }

// Fail records err against field unless an earlier failure exists.
func (r *Record) Fail(field string, err error) {
	if r.err != nil || err == nil {
		return
	}
	var fe *FieldError
	if errors.As(err, &fe) && fe.Entity == "" {
		r.err = &FieldError{Entity: r.entity, Field: fe.Field, Raw: fe.Raw, Err: fe.Err}
		return
	}
	r.err = &FieldError{Entity: r.entity, Field: field, Err: err}
}

func (r *Record) required(name string) (json.RawMessage, bool) {
	if r.err != nil {
		return nil, false
	}
	raw, ok := r.fields[name]
	if !ok {
		r.err = missingField(r.entity, name)
		return nil, false
	}
	return raw, true
}

func (r *Record) optional(name string) (json.RawMessage, bool) {
	if r.err != nil {
		return nil, false
	}
	raw, ok := r.fields[name]
	if !ok || IsNull(raw) {
		return nil, false
	}
	return raw, true
}

// Raw returns the undecoded value of a required field.
func (r *Record) Raw(name string) json.RawMessage {
	raw, _ := r.required(name)
	return raw
}

func (r *Record) String(name string) string {
	raw, ok := r.required(name)
	if !ok {
		return ""
	}
	v, err := String(name, raw)
	r.Fail(name, err)
	return v
}

// OptString returns nil when name is absent or null.
func (r *Record) OptString(name string) *string {
	raw, ok := r.optional(name)
	if !ok {
		return nil
	}
	v, err := String(name, raw)
	if err != nil {
		r.Fail(name, err)
		return nil
	}
	return &v
}

func (r *Record) Bool(name string) bool {
	raw, ok := r.required(name)
	if !ok {
		return false
	}
	v, err := Bool(name, raw)
	r.Fail(name, err)
	return v
}

func (r *Record) Enum(name string, n uint8) uint8 {
	raw, ok := r.required(name)
	if !ok {
		return 0
	}
	v, err := Enum(name, raw, n)
	r.Fail(name, err)
	return v
}

func (r *Record) Uint64(name string) uint64 {
	raw, ok := r.required(name)
	if !ok {
		return 0
	}
	v, err := Uint(name, raw, 64)
	r.Fail(name, err)
	return v
}

func (r *Record) Uint16(name string) uint16 {
	raw, ok := r.required(name)
	if !ok {
		return 0
	}
	v, err := Uint(name, raw, 16)
	r.Fail(name, err)
	return uint16(v)
}

// Int decodes a non-negative count that fits in int.
func (r *Record) Int(name string) int {
	raw, ok := r.required(name)
	if !ok {
		return 0
	}
	v, err := Uint(name, raw, strconvIntBits)
	r.Fail(name, err)
	return int(v)
}

// OptInt returns nil when name is absent or null.
func (r *Record) OptInt(name string) *int {
	raw, ok := r.optional(name)
	if !ok {
		return nil
	}
	v, err := Uint(name, raw, strconvIntBits)
	if err != nil {
		r.Fail(name, err)
		return nil
	}
	n := int(v)
	return &n
}

func (r *Record) Time(name string) time.Time {
	raw, ok := r.required(name)
	if !ok {
		return time.Time{}
	}
	v, err := Timestamp(name, raw)
	r.Fail(name, err)
	return v
}

// Indexed returns the undecoded elements of a required indexed collection.
func (r *Record) Indexed(name string) []json.RawMessage {
	raw, ok := r.required(name)
	if !ok {
		return nil
	}
	v, err := Indexed(name, raw)
	r.Fail(name, err)
	return v
}

// OptIndexed is Indexed for a collection that may be absent or null.
func (r *Record) OptIndexed(name string) ([]json.RawMessage, bool) {
	raw, ok := r.optional(name)
	if !ok {
		return nil, false
	}
	v, err := Indexed(name, raw)
	if err != nil {
		r.Fail(name, err)
		return nil, false
	}
	return v, true
}

// OptKeyed is OptIndexed for collections keyed by arbitrary strings.
func (r *Record) OptKeyed(name string) ([]json.RawMessage, bool) {
	raw, ok := r.optional(name)
	if !ok {
		return nil, false
	}
	v, err := Keyed(name, raw)
	if err != nil {
		r.Fail(name, err)
		return nil, false
	}
	return v, true
}
