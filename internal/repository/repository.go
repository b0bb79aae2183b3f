package repository

import (
	"context"

	"carenotes/internal/domain"
)

// NoteRepository is the durable store of care notes.
type NoteRepository interface {
	// Initialize ensures the notes table exists and, only when the table is
	// empty, inserts the two seed notes. Safe to call on every startup.
	Initialize(ctx context.Context) error

	// Insert persists a new note and returns the generated id. The note's
	// own ID field is ignored.
	Insert(ctx context.Context, note domain.Note) (int64, error)

	// List returns all notes in insertion order, or only those whose
	// residentName exactly equals the filter when it is non-empty. An empty
	// result is an empty slice, not an error.
	List(ctx context.Context, residentName string) ([]domain.Note, error)

	// Update overwrites all four mutable fields of the row with the given
	// id. The bool reports whether a row matched.
	Update(ctx context.Context, id int64, note domain.Note) (bool, error)

	// Delete removes the row with the given id. The bool reports whether a
	// row existed to remove.
	Delete(ctx context.Context, id int64) (bool, error)

	// Close releases the underlying database handle.
	Close() error
}
