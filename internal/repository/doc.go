// Package repository defines the data access interface for care notes.
//
// The NoteRepository interface is the contract between the service layer
// and durable storage. The actual implementation lives in the sqlite
// subpackage.
//
// # Not-found semantics
//
// Mutations report "no row matched" as a boolean result rather than an
// error. The decision of whether an empty outcome is an error belongs to
// the service layer, which keeps the API's not-found policy in one visible
// place instead of baked into storage plumbing.
package repository
