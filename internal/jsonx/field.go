// Package jsonx provides the strict JSON request-body decoding used at
// the HTTP boundary: reject unknown fields, duplicate keys, trailing
// data, and — via Field[T] — distinguish an explicit JSON null from a
// field that was simply never set, so null-for-primitive can be
// rejected instead of silently decoding to a zero value.
package jsonx

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state JSON value: never present in the payload, present
// and explicitly null, or present with a value.
type Field[T any] struct {
	set  bool
	null bool
	val  T
}

// IsSet reports whether the key appeared in the JSON object at all.
func (f Field[T]) IsSet() bool { return f.set }

// IsNull reports whether the key was present with a JSON null value.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Value returns the decoded value and whether it is usable, i.e. present
// and non-null.
func (f Field[T]) Value() (T, bool) { return f.val, f.set && !f.null }

// UnmarshalJSON implements json.Unmarshaler, recording presence and
// null-ness alongside the decoded value.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		f.set, f.null, f.val = true, true, zero
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.set, f.null, f.val = true, false, v
	return nil
}
