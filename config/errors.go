package config

import (
	"errors"
	"strings"
)

var (
	ErrMissingRequired = errors.New("missing required field")
	ErrMalformedValue  = errors.New("malformed value")
)

type Reason string

const (
	ReasonMissing   Reason = "missing"
	ReasonEmpty     Reason = "empty"
	ReasonMalformed Reason = "malformed"
)

// UnknownField names a failure the parser could not tie to a variable.
const UnknownField = "<unknown>"

type FieldError struct {
	Field  string
	Reason Reason
	Detail string
}

func (f FieldError) Error() string {
	if f.Detail != "" {
		return f.Field + ": " + string(f.Reason) + " (" + f.Detail + ")"
	}

	return f.Field + ": " + string(f.Reason)
}

// ValidationError collects every field that failed during Load.
type ValidationError struct {
	Fields []FieldError
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))

	for _, field := range v.Fields {
		parts = append(parts, field.Error())
	}

	return "invalid configuration: " + strings.Join(parts, "; ")
}

func (v *ValidationError) Is(target error) bool {
	for _, field := range v.Fields {
		switch {
		case target == ErrMissingRequired && (field.Reason == ReasonMissing || field.Reason == ReasonEmpty):
			return true
		case target == ErrMalformedValue && field.Reason == ReasonMalformed:
			return true
		}
	}

	return false
}

// FieldNames returns the failing variable names in declaration order.
func (v *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(v.Fields))

	for _, field := range v.Fields {
		names = append(names, field.Field)
	}

	return names
}
