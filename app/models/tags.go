package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Tags is an ordered list of tag strings. Any JSON value that is not an
// array of strings decodes to an empty list instead of failing.
type Tags []string

// CoerceTags converts a raw JSON value into Tags, defaulting to empty.
func CoerceTags(raw json.RawMessage) Tags {
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil || values == nil {
		return Tags{}
	}
	return Tags(values)
}

func (t *Tags) UnmarshalJSON(data []byte) error {
	*t = CoerceTags(data)
	return nil
}

// MarshalJSON always emits an array, never null.
func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Contains reports whether tag is present, compared exactly.
func (t Tags) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

// OptionalTags records whether a tags field was present in a payload at all.
type OptionalTags struct {
	Set    bool
	Values Tags
}

func (o *OptionalTags) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Values = CoerceTags(data)
	return nil
}

// Truthy evaluates a raw JSON value the way a loosely typed client expects:
// false, 0, "", null and a missing value are false, everything else is true.
func Truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '[', '{':
		return true
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false
		}
		return s != ""
	}
	n, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return false
	}
	return n != 0
}
