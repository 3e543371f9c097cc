package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Attribute is one key/value entry of an Attributes mapping.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is an ordered string-to-string mapping sourced from a
// placemark's structured data. Iteration follows insertion order; setting an
// existing key replaces the value in place.
// The zero value is an empty mapping ready to use.
type Attributes struct {
	entries []Attribute
	index   map[string]int
}

// NewAttributes builds a mapping from entries in order. Later duplicates win.
func NewAttributes(entries ...Attribute) Attributes {
	var a Attributes
	for _, e := range entries {
		a.Set(e.Key, e.Value)
	}
	return a
}

// Set stores value under key.
func (a *Attributes) Set(key, value string) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[key]; ok {
		a.entries[i].Value = value
		return
	}
	a.index[key] = len(a.entries)
	a.entries = append(a.entries, Attribute{Key: key, Value: value})
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (string, bool) {
	i, ok := a.index[key]
	if !ok {
		return "", false
	}
	return a.entries[i].Value, true
}

// Len returns the number of entries.
func (a Attributes) Len() int {
	return len(a.entries)
}

// Entries returns a copy of the entries in insertion order.
func (a Attributes) Entries() []Attribute {
	out := make([]Attribute, len(a.entries))
	copy(out, a.entries)
	return out
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	return NewAttributes(a.entries...)
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
// An empty mapping encodes as {}.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range a.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping member order.
// Non-string member values are stored as their JSON text; null is stored as "".
func (a *Attributes) UnmarshalJSON(data []byte) error {
	*a = Attributes{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("attributes must be a JSON object: %w", ErrInvalidInput)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		a.Set(key, attributeValue(raw))
	}

	_, err = dec.Token()
	return err
}

// attributeValue flattens a JSON member value to a string.
func attributeValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return ""
	}
	return string(bytes.TrimSpace(raw))
}
