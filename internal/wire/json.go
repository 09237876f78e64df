package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Object is a decoded JSON object whose members are looked up by their proto
// field name or its lowerCamelCase JSON name.
type Object map[string]json.RawMessage

// ParseObject decodes b into an Object. A JSON null yields an empty Object.
func ParseObject(b []byte) (Object, error) {
	obj := Object{}
	if isNull(b) {
		return obj, nil
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// CamelCase converts a snake_case proto field name to its lowerCamelCase JSON name.
func CamelCase(name string) string {
	var b strings.Builder
	upper := false
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

func (o Object) lookup(name string) (json.RawMessage, bool) {
	if v, ok := o[name]; ok && !isNull(v) {
		return v, true
	}
	if v, ok := o[CamelCase(name)]; ok && !isNull(v) {
		return v, true
	}
	return nil, false
}

// String reads a string member into dst, leaving dst untouched when absent.
func (o Object) String(name string, dst *string) error {
	raw, ok := o.lookup(name)
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Uint64 reads an unsigned integer encoded either as a JSON number or string.
func (o Object) Uint64(name string, dst *uint64) error {
	raw, ok := o.lookup(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseUint(unquote(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = v
	return nil
}

// Uint32 reads an unsigned 32-bit integer encoded either as a JSON number or string.
func (o Object) Uint32(name string, dst *uint32) error {
	raw, ok := o.lookup(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseUint(unquote(raw), 10, 32)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = uint32(v)
	return nil
}

// Int64 reads a signed integer encoded either as a JSON number or string.
func (o Object) Int64(name string, dst *int64) error {
	raw, ok := o.lookup(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(unquote(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = v
	return nil
}

// Bool reads a bool encoded either as a JSON bool or string.
func (o Object) Bool(name string, dst *bool) error {
	raw, ok := o.lookup(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(unquote(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = v
	return nil
}

// Value decodes a member into dst with encoding/json.
func (o Object) Value(name string, dst any) error {
	raw, ok := o.lookup(name)
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// FormatUint64 renders v the way proto3 JSON renders 64-bit integers.
func FormatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// FormatInt64 renders v the way proto3 JSON renders 64-bit integers.
func FormatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func unquote(raw json.RawMessage) string {
	s := string(bytes.TrimSpace(raw))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func isNull(b []byte) bool {
	t := bytes.TrimSpace(b)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
