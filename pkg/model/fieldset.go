package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FieldSet holds the raw text entered for each metric. Values are kept exactly
// as typed until validation; the zero value is the empty form.
type FieldSet struct {
	values [fieldCount]string
}

// NewFieldSet builds a FieldSet from the provided values. Invalid identifiers
// are ignored.
func NewFieldSet(values map[FieldID]string) FieldSet {
	var fs FieldSet
	for id, value := range values {
		if id.Valid() {
			fs.values[id] = value
		}
	}
	return fs
}

// Get returns the raw value of a field.
func (fs FieldSet) Get(id FieldID) string {
	if !id.Valid() {
		return ""
	}
	return fs.values[id]
}

// Set stores the raw value of a field.
func (fs *FieldSet) Set(id FieldID, value string) {
	if fs == nil || !id.Valid() {
		return
	}
	fs.values[id] = value
}

// With returns a copy of fs with the field updated.
func (fs FieldSet) With(id FieldID, value string) FieldSet {
	fs.Set(id, value)
	return fs
}

// Empty reports whether every field is blank.
func (fs FieldSet) Empty() bool {
	for _, v := range fs.values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Map returns the values keyed by wire name.
func (fs FieldSet) Map() map[string]string {
	out := make(map[string]string, fieldCount)
	for id, v := range fs.values {
		out[fieldNames[id]] = v
	}
	return out
}

// MarshalJSON emits an object with exactly the eight wire names, in canonical
// order, each mapped to its raw string value.
func (fs FieldSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for id, v := range fs.values {
		if id > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fieldNames[id])
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts an object keyed by wire names. String values are kept
// verbatim; numeric literals keep their literal text so files written by hand
// ({"Age": 33}) load as "33". Unknown keys are rejected.
func (fs *FieldSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("model: decode field set: %w", err)
	}
	var out FieldSet
	for key, msg := range raw {
		id, err := ParseFieldID(key)
		if err != nil {
			return err
		}
		value, err := rawValue(msg)
		if err != nil {
			return fmt.Errorf("model: field %s: %w", key, err)
		}
		out.values[id] = value
	}
	*fs = out
	return nil
}

func rawValue(msg json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", fmt.Errorf("expected string or number")
	}
	return n.String(), nil
}
