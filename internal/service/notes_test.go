package service

import (
	"context"
	"errors"
	"testing"

	"carenotes/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is a recording fake for the repository, so tests can assert
// which store operations were (or were not) reached.
type fakeRepo struct {
	insertCalls int
	updateCalls int
	deleteCalls int

	lastFilter string

	insertID  int64
	listNotes []domain.Note
	matched   bool
	err       error
}

func (f *fakeRepo) Initialize(ctx context.Context) error { return f.err }

func (f *fakeRepo) Insert(ctx context.Context, note domain.Note) (int64, error) {
	f.insertCalls++
	return f.insertID, f.err
}

func (f *fakeRepo) List(ctx context.Context, residentName string) ([]domain.Note, error) {
	f.lastFilter = residentName
	return f.listNotes, f.err
}

func (f *fakeRepo) Update(ctx context.Context, id int64, note domain.Note) (bool, error) {
	f.updateCalls++
	return f.matched, f.err
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	f.deleteCalls++
	return f.matched, f.err
}

func (f *fakeRepo) Close() error { return nil }

func validNote() domain.Note {
	return domain.Note{
		ResidentName: "Alice Johnson",
		DateTime:     "2024-09-17T10:30:00Z",
		Content:      "Medication administered as scheduled.",
		AuthorName:   "Nurse Smith",
	}
}

func TestCreateAssignsStoreID(t *testing.T) {
	repo := &fakeRepo{insertID: 7}
	svc := NewNoteService(repo)

	created, err := svc.Create(context.Background(), validNote())
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "Alice Johnson", created.ResidentName)
}

func TestCreateValidationPrecedesStorage(t *testing.T) {
	fields := []func(*domain.Note){
		func(n *domain.Note) { n.ResidentName = "" },
		func(n *domain.Note) { n.DateTime = "" },
		func(n *domain.Note) { n.Content = "" },
		func(n *domain.Note) { n.AuthorName = "" },
	}

	for _, mutate := range fields {
		repo := &fakeRepo{}
		svc := NewNoteService(repo)

		note := validNote()
		mutate(&note)

		_, err := svc.Create(context.Background(), note)

		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Zero(t, repo.insertCalls, "store must not be reached on validation failure")
	}
}

func TestListPassesFilterThrough(t *testing.T) {
	repo := &fakeRepo{listNotes: []domain.Note{{ID: 1}}}
	svc := NewNoteService(repo)

	_, err := svc.List(context.Background(), "Bob Williams")
	require.NoError(t, err)
	assert.Equal(t, "Bob Williams", repo.lastFilter)
}

func TestListEmptyResultIsNotFound(t *testing.T) {
	// An empty result set is an error by contract: the reference API
	// returns 404 for an empty list instead of an empty 200 payload.
	repo := &fakeRepo{listNotes: []domain.Note{}}
	svc := NewNoteService(repo)

	notes, err := svc.List(context.Background(), "Nobody Here")
	assert.Nil(t, notes)
	assert.ErrorIs(t, err, ErrNoNotes)
}

func TestUpdateValidationPrecedesStorage(t *testing.T) {
	repo := &fakeRepo{matched: true}
	svc := NewNoteService(repo)

	note := validNote()
	note.AuthorName = ""

	_, err := svc.Update(context.Background(), 1, note)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "authorName", ve.Field)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateEchoesPayload(t *testing.T) {
	// The service trusts the caller's payload as the new truth; it does
	// not re-read the row after the write.
	repo := &fakeRepo{matched: true}
	svc := NewNoteService(repo)

	note := validNote()
	updated, err := svc.Update(context.Background(), 2, note)
	require.NoError(t, err)

	note.ID = 2
	assert.Equal(t, note, updated)
}

func TestUpdateUnmatchedIsNotFound(t *testing.T) {
	repo := &fakeRepo{matched: false}
	svc := NewNoteService(repo)

	_, err := svc.Update(context.Background(), 999, validNote())
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDeleteRejectsNonPositiveID(t *testing.T) {
	for _, id := range []int64{0, -1, -42} {
		repo := &fakeRepo{matched: true}
		svc := NewNoteService(repo)

		err := svc.Delete(context.Background(), id)

		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve), "id %d should be rejected", id)
		assert.Equal(t, "id", ve.Field)
		assert.Zero(t, repo.deleteCalls)
	}
}

func TestDeleteUnmatchedIsNotFound(t *testing.T) {
	repo := &fakeRepo{matched: false}
	svc := NewNoteService(repo)

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestStorageFailuresAreWrapped(t *testing.T) {
	storageErr := errors.New("disk on fire")
	repo := &fakeRepo{err: storageErr}
	svc := NewNoteService(repo)

	_, err := svc.Create(context.Background(), validNote())
	assert.ErrorIs(t, err, storageErr)

	_, err = svc.List(context.Background(), "")
	assert.ErrorIs(t, err, storageErr)

	err = svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, storageErr)
}
