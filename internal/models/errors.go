package models

import (
	"fmt"
	"strings"
)

// FieldError describes a single constraint violation on an entity field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports one or more field-level constraint violations.
// It maps to a client error at the HTTP boundary.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validationError builds a ValidationError, or nil when there are no violations.
func validationError(violations []FieldError) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
