package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SelectItem is a compact id/label pair used to populate dropdowns.
type SelectItem struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// FlexibleString accepts a JSON string or number and keeps its textual form.
type FlexibleString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	v, err := scalarText(data)
	if err != nil {
		return err
	}
	*s = FlexibleString(v)
	return nil
}

// FlexibleStrings accepts a JSON scalar or an array of scalars and always yields a list.
// null yields an empty list.
type FlexibleStrings []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexibleStrings) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}
	if trimmed[0] != '[' {
		v, err := scalarText(trimmed)
		if err != nil {
			return err
		}
		*s = FlexibleStrings{v}
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	out := make(FlexibleStrings, 0, len(raw))
	for _, item := range raw {
		v, err := scalarText(item)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*s = out
	return nil
}

func scalarText(data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	switch trimmed[0] {
	case '"':
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return "", err
		}
		return v, nil
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	case '[', '{':
		return "", fmt.Errorf("expected a string or number, got %s", string(trimmed))
	default:
		var v json.Number
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return "", err
		}
		return v.String(), nil
	}
}

// OptionalID distinguishes an absent JSON field from an explicit null.
// Set is false when the field was absent; Value is nil when it was null.
type OptionalID struct {
	Set   bool
	Value *int64
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the field is present.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("expected an integer id or null: %w", err)
	}
	o.Value = &v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalID) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
