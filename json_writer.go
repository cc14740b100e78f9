package tradestats

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObject builds a JSON object whose keys keep their insertion order, so
// that a ledger written as JSON lines reads like its CSV columns.
// The zero value is an empty object.
type jsonObject struct {
	buf bytes.Buffer
	err error // first marshaling failure
}

// Set appends key with the JSON encoding of value.
func (o *jsonObject) Set(key string, value any) *jsonObject {
	if o.err != nil {
		return o
	}
	raw, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("field %q: %w", key, err)
		return o
	}
	if o.buf.Len() > 0 {
		o.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	o.buf.Write(k)
	o.buf.WriteByte(':')
	o.buf.Write(raw)
	return o
}

// MarshalJSON returns the object, or the first failure.
func (o *jsonObject) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	out := make([]byte, 0, o.buf.Len()+2)
	out = append(out, '{')
	out = append(out, o.buf.Bytes()...)
	return append(out, '}'), nil
}
