// Package service implements the business logic of the CareNotes API.
//
// NoteService sits between the HTTP handlers and the repository. It owns
// input validation (which always runs before any store call) and the
// translation of store outcomes into the API's error taxonomy:
//
//   - domain.ValidationError — rejected input, the store is never reached
//   - ErrNoteNotFound / ErrNoNotes — a successful query or mutation that
//     matched nothing
//   - anything else — a storage failure, wrapped with context
//
// The "empty list result is an error" policy lives here, deliberately, so
// the quirk is visible in one place rather than baked into storage code.
package service
