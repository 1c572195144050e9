package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// OptionalBool records a JSON field only when it holds a real boolean.
// Any other JSON value is ignored, not rejected.
type OptionalBool struct {
	Set   bool
	Value bool
}

func (b *OptionalBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err != nil || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		b.Set = false
		return nil
	}
	b.Set = true
	b.Value = v
	return nil
}

// FlexFloat accepts a JSON number, a numeric string, or null/"" (cleared).
type FlexFloat struct {
	Set   bool
	Value *float64
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Set = true
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		f.Value = nil
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.Value = &num
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a number, got %s", raw)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		f.Value = nil
		return nil
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("expected a number, got %q", s)
	}
	f.Value = &num
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// NullableString distinguishes an absent field from null; "" reads as null.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(bytes.TrimSpace(data)) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a string, got %s", data)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		n.Value = nil
		return nil
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
