package wire

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Object writes a JSON object in call order. The Opt* methods emit nothing
// for a nil value and never emit an explicit null, so an absent optional
// stays absent on the wire. A marshal failure is kept and reported by Bytes.
type Object struct {
	buf bytes.Buffer
	n   int
	err error
}

// NewObject starts an empty object.
func NewObject() *Object {
	o := &Object{}
	o.buf.WriteByte('{')
	return o
}

func (o *Object) key(k string) {
	if o.n > 0 {
		o.buf.WriteByte(',')
	}
	o.n++
	kb, _ := json.Marshal(k)
	o.buf.Write(kb)
	o.buf.WriteByte(':')
}

func (o *Object) Str(k, v string) *Object {
	if o.err != nil {
		return o
	}
	vb, err := json.Marshal(v)
	if err != nil {
		o.err = err
		return o
	}
	o.key(k)
	o.buf.Write(vb)
	return o
}

func (o *Object) Uint(k string, v uint64) *Object {
	if o.err != nil {
		return o
	}
	o.key(k)
	o.buf.WriteString(strconv.FormatUint(v, 10))
	return o
}

func (o *Object) Int(k string, v int64) *Object {
	if o.err != nil {
		return o
	}
	o.key(k)
	o.buf.WriteString(strconv.FormatInt(v, 10))
	return o
}

// Bool01 writes v using the service's 0/1 boolean convention.
func (o *Object) Bool01(k string, v bool) *Object {
	if v {
		return o.Int(k, 1)
	}
	return o.Int(k, 0)
}

// Value writes v as a nested JSON value (typically a json.Marshaler).
func (o *Object) Value(k string, v any) *Object {
	if o.err != nil {
		return o
	}
	vb, err := json.Marshal(v)
	if err != nil {
		o.err = err
		return o
	}
	o.key(k)
	o.buf.Write(vb)
	return o
}

func (o *Object) OptStr(k string, v *string) *Object {
	if v == nil {
		return o
	}
	return o.Str(k, *v)
}

func (o *Object) OptUint(k string, v *uint64) *Object {
	if v == nil {
		return o
	}
	return o.Uint(k, *v)
}

func (o *Object) OptBool01(k string, v *bool) *Object {
	if v == nil {
		return o
	}
	return o.Bool01(k, *v)
}

// Bytes closes the object and returns its encoding.
func (o *Object) Bytes() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	out := make([]byte, 0, o.buf.Len()+1)
	out = append(out, o.buf.Bytes()...)
	return append(out, '}'), nil
}
