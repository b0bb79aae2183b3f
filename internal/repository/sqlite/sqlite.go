// Package sqlite implements repository.NoteRepository on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"carenotes/internal/domain"
	"carenotes/internal/repository"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Store provides durable note storage backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

var _ repository.NoteRepository = (*Store)(nil)

// New opens (or creates) the database at dbPath. Parent directories are
// created as needed. Use ":memory:" for an ephemeral store in tests.
func New(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		// A pooled second connection would see its own empty database.
		db.SetMaxOpenConns(1)
	}

	return &Store{db: db}, nil
}

// seedNotes is inserted exactly once, on first startup against an empty
// table, so a first-time caller never observes an empty system.
var seedNotes = []domain.Note{
	{
		ResidentName: "Alice Johnson",
		DateTime:     "2024-09-17T10:30:00Z",
		Content:      "Medication administered as scheduled.",
		AuthorName:   "Nurse Smith",
	},
	{
		ResidentName: "Bob Williams",
		DateTime:     "2024-09-17T11:45:00Z",
		Content:      "Assisted with physical therapy exercises.",
		AuthorName:   "Dr. Brown",
	},
}

// Initialize creates the notes table if needed and seeds the example notes
// on a fresh database. Idempotent: seeding is keyed on row count, so
// repeated calls never duplicate data.
func (s *Store) Initialize(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		residentName TEXT NOT NULL,
		dateTime TEXT NOT NULL,
		content TEXT NOT NULL,
		authorName TEXT NOT NULL
	);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count); err != nil {
		return fmt.Errorf("count notes: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, n := range seedNotes {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO notes (residentName, dateTime, content, authorName) VALUES (?, ?, ?, ?)`,
			n.ResidentName, n.DateTime, n.Content, n.AuthorName,
		); err != nil {
			return fmt.Errorf("seed notes: %w", err)
		}
	}
	return nil
}

// Insert persists a new note and returns the generated id.
func (s *Store) Insert(ctx context.Context, note domain.Note) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (residentName, dateTime, content, authorName) VALUES (?, ?, ?, ?)`,
		note.ResidentName, note.DateTime, note.Content, note.AuthorName,
	)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read generated id: %w", err)
	}
	return id, nil
}

// List returns notes in insertion order, filtered by exact residentName
// match when the filter is non-empty.
func (s *Store) List(ctx context.Context, residentName string) ([]domain.Note, error) {
	query := `SELECT id, residentName, dateTime, content, authorName FROM notes ORDER BY id`
	var args []any
	if residentName != "" {
		query = `SELECT id, residentName, dateTime, content, authorName FROM notes WHERE residentName = ? ORDER BY id`
		args = append(args, residentName)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// Update overwrites all four mutable fields of the row with the given id.
func (s *Store) Update(ctx context.Context, id int64, note domain.Note) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET residentName = ?, dateTime = ?, content = ?, authorName = ? WHERE id = ?`,
		note.ResidentName, note.DateTime, note.Content, note.AuthorName, id,
	)
	if err != nil {
		return false, fmt.Errorf("update note: %w", err)
	}

	matched, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read affected rows: %w", err)
	}
	return matched > 0, nil
}

// Delete removes the row with the given id.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}

	matched, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read affected rows: %w", err)
	}
	return matched > 0, nil
}

// scanNote maps a database row onto the Note structure. Every column is
// declared NOT NULL, so no null handling is required.
func scanNote(rows *sql.Rows) (domain.Note, error) {
	var n domain.Note
	if err := rows.Scan(&n.ID, &n.ResidentName, &n.DateTime, &n.Content, &n.AuthorName); err != nil {
		return domain.Note{}, fmt.Errorf("scan note: %w", err)
	}
	return n, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
