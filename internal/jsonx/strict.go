package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBodyBytes caps a request body read by ParseStrictJSONBody
// before any JSON decoding is attempted.
const DefaultMaxBodyBytes = 1 << 20 // 1MB

var (
	ErrEmptyBody    = errors.New("jsonx: empty body")
	ErrTrailingJSON = errors.New("jsonx: trailing data after JSON value")
)

// ParseStrictJSONBody reads and strictly decodes an HTTP request body
// into dst. "Strict" means:
//
//   - the body must be non-empty and parse as exactly one JSON value
//     (ErrTrailingJSON if more follows)
//   - unknown object fields are rejected (json.Decoder.DisallowUnknownFields)
//   - duplicate object keys are rejected, even though encoding/json's
//     default behavior is last-value-wins
//
// It does not enforce which fields must be present or non-null — pair it
// with Field[T] on the destination struct for that.
func ParseStrictJSONBody[T any](r *http.Request, maxBodyBytes int64, dst *T) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrEmptyBody
	}
	if err := rejectDuplicateKeys(body); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return ErrTrailingJSON
	}
	return nil
}

// rejectDuplicateKeys walks the raw JSON token stream looking for an
// object with the same key spelled twice at the same nesting level.
// encoding/json itself is silently last-value-wins on duplicate keys, so
// this check runs as a separate pass before the real decode.
func rejectDuplicateKeys(body []byte) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	return checkObjectKeys(dec)
}

// checkObjectKeys consumes the next JSON value from dec. If it is an
// object, every key at that level is checked for duplicates (recursing
// into nested objects/arrays to catch duplicates at any depth).
func checkObjectKeys(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, isDelim := tok.(json.Delim)
	if !isDelim {
		return nil // scalar value, nothing to check
	}
	switch delim {
	case '{':
		seen := make(map[string]struct{})
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)
			if _, dup := seen[key]; dup {
				return fmt.Errorf("jsonx: duplicate key %q", key)
			}
			seen[key] = struct{}{}
			if err := checkObjectKeys(dec); err != nil {
				return err
			}
		}
		_, err := dec.Token() // consume closing '}'
		return err
	case '[':
		for dec.More() {
			if err := checkObjectKeys(dec); err != nil {
				return err
			}
		}
		_, err := dec.Token() // consume closing ']'
		return err
	default:
		return nil
	}
}
