package entity

import (
	"fmt"
	"strings"
)

// FieldError describes a single invariant violation on an entity field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one pass, so callers can
// report them all together instead of failing on the first.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Details returns the violations as a field->message map for API error details.
func (e *ValidationError) Details() map[string]string {
	out := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		out[v.Field] = v.Message
	}
	return out
}

type violations struct {
	list []FieldError
}

func (v *violations) add(field, message string) {
	v.list = append(v.list, FieldError{Field: field, Message: message})
}

func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}
