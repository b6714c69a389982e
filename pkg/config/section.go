package config

import (
	"fmt"
	"strings"
)

// section renders one block of a configuration dump.
type section struct {
	b strings.Builder
}

func newSection(title string) *section {
	s := &section{}
	s.b.WriteString("\n--- " + title + " ---\n")
	return s
}

func (s *section) add(key string, value any) *section {
	fmt.Fprintf(&s.b, "  %s: %v\n", key, value)
	return s
}

func (s *section) String() string {
	return s.b.String()
}

// FieldError reports an invalid configuration value by its koanf key.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func invalid(field, format string, args ...any) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
