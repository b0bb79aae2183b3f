package handler

import (
	"io/fs"
	"net/http"
)

// NewRouter wires the note handler onto the wire-contract routes. The
// static filesystem holds the client UI; passing nil skips mounting it
// (used by tests).
func NewRouter(h *NoteHandler, static fs.FS) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /notes/create", h.Create)
	mux.HandleFunc("GET /notes/list", h.List)
	mux.HandleFunc("PUT /notes/update/{id}", h.Update)
	mux.HandleFunc("DELETE /notes/delete/{id}", h.Delete)

	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /favicon.ico", h.Favicon)
	mux.HandleFunc("GET /{$}", h.Root)

	if static != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}

	return mux
}
