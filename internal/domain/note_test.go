package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNote() Note {
	return Note{
		ResidentName: "Alice Johnson",
		DateTime:     "2024-09-17T10:30:00Z",
		Content:      "Medication administered as scheduled.",
		AuthorName:   "Nurse Smith",
	}
}

func TestNoteValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Note)
		wantField string
	}{
		{
			name:   "valid note",
			mutate: func(n *Note) {},
		},
		{
			name:      "empty residentName",
			mutate:    func(n *Note) { n.ResidentName = "" },
			wantField: "residentName",
		},
		{
			name:      "empty dateTime",
			mutate:    func(n *Note) { n.DateTime = "" },
			wantField: "dateTime",
		},
		{
			name:      "empty content",
			mutate:    func(n *Note) { n.Content = "" },
			wantField: "content",
		},
		{
			name:      "empty authorName",
			mutate:    func(n *Note) { n.AuthorName = "" },
			wantField: "authorName",
		},
		{
			name:      "whitespace-only field counts as empty",
			mutate:    func(n *Note) { n.Content = "   " },
			wantField: "content",
		},
		{
			name:      "first missing field is reported",
			mutate:    func(n *Note) { n.ResidentName = ""; n.AuthorName = "" },
			wantField: "residentName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := validNote()
			tt.mutate(&note)

			err := note.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestValidateIgnoresID(t *testing.T) {
	// The id is store-assigned; a zero id must not fail validation.
	note := validNote()
	note.ID = 0
	assert.NoError(t, note.Validate())
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "authorName is required", (&ValidationError{Field: "authorName"}).Error())
	assert.Equal(t, "id must be a positive integer",
		(&ValidationError{Field: "id", Reason: "must be a positive integer"}).Error())
}
