package service

import (
	"context"
	"errors"
	"fmt"

	"carenotes/internal/domain"
	"carenotes/internal/repository"
)

var (
	// ErrNoteNotFound reports that no note matched the requested id.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoNotes reports that a list query matched nothing. The API
	// contract surfaces an empty result set as not-found rather than as an
	// empty success payload.
	ErrNoNotes = errors.New("no notes found")
)

// NoteService validates requests and orchestrates store calls.
type NoteService struct {
	repo repository.NoteRepository
}

// NewNoteService creates a note service backed by the given repository.
func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Create validates and persists a new note, returning it with the
// store-assigned id. Validation failures never reach the store.
func (s *NoteService) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}

	id, err := s.repo.Insert(ctx, note)
	if err != nil {
		return domain.Note{}, fmt.Errorf("create note: %w", err)
	}

	note.ID = id
	return note, nil
}

// List returns all notes, or only those for the given resident when the
// filter is non-empty. An empty result yields ErrNoNotes.
func (s *NoteService) List(ctx context.Context, residentName string) ([]domain.Note, error) {
	notes, err := s.repo.List(ctx, residentName)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}
	return notes, nil
}

// Update replaces all four fields of the note with the given id. The
// returned note echoes the caller's payload with the id set; the row is not
// re-read after the write.
func (s *NoteService) Update(ctx context.Context, id int64, note domain.Note) (domain.Note, error) {
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}

	matched, err := s.repo.Update(ctx, id, note)
	if err != nil {
		return domain.Note{}, fmt.Errorf("update note: %w", err)
	}
	if !matched {
		return domain.Note{}, ErrNoteNotFound
	}

	note.ID = id
	return note, nil
}

// Delete removes the note with the given id. A non-positive id is rejected
// as invalid input before any store call, distinct from not-found.
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &domain.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}

	matched, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if !matched {
		return ErrNoteNotFound
	}
	return nil
}
