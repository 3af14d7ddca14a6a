package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Reference is a weak pointer from one record to another: enough to look the
// target up by id and show its name, never ownership.
type Reference struct {
	Type  string `json:"type,omitempty"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// Ref returns a Reference to the record with the given id.
func Ref(value string) *Reference {
	return &Reference{Value: value}
}

// NamedRef returns a Reference carrying both id and display name.
func NamedRef(value, name string) *Reference {
	return &Reference{Name: name, Value: value}
}

// IsSet reports whether r points at something, i.e. it is non-nil and has an id.
func (r *Reference) IsSet() bool {
	return r != nil && r.Value != ""
}

func (r Reference) String() string {
	if r.Name == "" {
		return r.Value
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.Value)
}

// UnmarshalJSON accepts the members under any casing. Older payloads send
// "Name"/"Value"; when both spellings appear the lowercase one wins.
func (r *Reference) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding reference: %w", err)
	}

	var out Reference
	exact := make(map[string]bool, 3)
	for key, val := range raw {
		var dst *string
		canonical := strings.ToLower(key)
		switch canonical {
		case "type":
			dst = &out.Type
		case "name":
			dst = &out.Name
		case "value":
			dst = &out.Value
		default:
			continue
		}
		if exact[canonical] {
			continue
		}
		if string(val) == "null" {
			continue
		}
		if err := json.Unmarshal(val, dst); err != nil {
			return fmt.Errorf("decoding reference %s: %w", key, err)
		}
		if key == canonical {
			exact[canonical] = true
		}
	}
	*r = out
	return nil
}
