package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyLineDetail is returned when a line with no detail is encoded.
var ErrEmptyLineDetail = errors.New("line has no detail set")

// ValidationError reports a structural precondition violated while
// constructing a value.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}

// MissingFieldError reports a required field that is absent for an operation
// that strictly needs it.
type MissingFieldError struct {
	Kind  Kind
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %s", e.Kind, e.Field)
}

// ToRefError reports an attempt to reference a record that has no id.
type ToRefError struct {
	Kind Kind
}

func (e *ToRefError) Error() string {
	return fmt.Sprintf("cannot reference %s without an id", e.Kind)
}

// DecodeError reports a malformed wire payload.
type DecodeError struct {
	Reason string
	Keys   []string
}

func (e *DecodeError) Error() string {
	if len(e.Keys) == 0 {
		return "decode: " + e.Reason
	}
	return fmt.Sprintf("decode: %s [%s]", e.Reason, strings.Join(e.Keys, ", "))
}
