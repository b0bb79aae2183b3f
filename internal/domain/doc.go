// Package domain defines the core domain types for the CareNotes service.
//
// The package contains the Note entity and its validation rules. Types here
// are pure: no database, HTTP, or other infrastructure concerns.
//
// # Note
//
// Note is the sole entity of the system: a free-text care observation about
// a resident, written by a named author at a caller-supplied timestamp. The
// id is assigned by the store on creation and is immutable afterwards.
//
// # Validation
//
// Validate enforces the request contract: the four caller-supplied fields
// must all be present and non-empty. Failures are reported as
// ValidationError values so callers can distinguish them from storage
// errors with errors.As.
package domain
