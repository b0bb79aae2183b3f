package domain

import (
	"fmt"
	"strings"
)

// Note is a single care observation about a resident.
//
// The JSON field names are part of the wire contract and must not be
// renamed. DateTime is the caller-supplied ISO-8601 timestamp of the
// observation itself, not of the row's creation; it is stored verbatim.
type Note struct {
	ID           int64  `json:"id"`
	ResidentName string `json:"residentName"`
	DateTime     string `json:"dateTime"`
	Content      string `json:"content"`
	AuthorName   string `json:"authorName"`
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// Validate checks the four caller-supplied fields and returns a
// ValidationError naming the first missing or empty one. The id is assigned
// by the store and is not part of validation.
func (n *Note) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"residentName", n.ResidentName},
		{"dateTime", n.DateTime},
		{"content", n.Content},
		{"authorName", n.AuthorName},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}
