// Package handler implements the HTTP layer of the CareNotes API.
//
// NoteHandler translates requests into service calls and maps the service
// error taxonomy onto status codes: validation failures are 400, not-found
// outcomes are 404, storage failures are 500. Error responses use the
// {error, details} JSON structure; success responses return the resource
// as JSON.
//
// NewRouter wires the exact wire-contract routes, and the middleware in
// this package (Chain, Recover, RequestLog) wraps the router in main.
package handler
