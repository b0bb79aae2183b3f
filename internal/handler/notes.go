package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"carenotes/internal/domain"
	"carenotes/internal/service"

	"github.com/rs/zerolog"
)

// NoteHandler handles the care-note API requests.
type NoteHandler struct {
	svc *service.NoteService
	log zerolog.Logger
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(svc *service.NoteService, log zerolog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: log}
}

// ErrorResponse is the JSON body for all failure outcomes.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Create handles POST /notes/create. On success the response is the full
// note including the store-assigned id.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var note domain.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.Create(r.Context(), note)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, created, http.StatusOK)
}

// List handles GET /notes/list with an optional exact-match residentName
// filter. An empty result set is a 404 by contract.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	residentName := r.URL.Query().Get("residentName")

	notes, err := h.svc.List(r.Context(), residentName)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, notes, http.StatusOK)
}

// Update handles PUT /notes/update/{id}. The body is a full replacement
// note; the response echoes it with the path id.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(w, "Invalid note ID", err.Error(), http.StatusBadRequest)
		return
	}

	var note domain.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, note)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

// Delete handles DELETE /notes/delete/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(w, "Invalid note ID", err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, map[string]string{
		"message": fmt.Sprintf("Note %d deleted successfully.", id),
	}, http.StatusOK)
}

// Root redirects to the client UI entry point. Reaching it at all is the
// liveness signal; it carries no data.
func (h *NoteHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// Favicon always reports not found. The UI ships no icon; answering the
// request keeps browsers from retrying it.
func (h *NoteHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, "Favicon not found", "", http.StatusNotFound)
}

// Health is a bare liveness probe.
func (h *NoteHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// writeServiceError maps the service error taxonomy onto status codes.
func (h *NoteHandler) writeServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeError(w, "Validation failed", ve.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNoteNotFound):
		h.writeError(w, "Note not found", "", http.StatusNotFound)
	case errors.Is(err, service.ErrNoNotes):
		h.writeError(w, "No notes found", "", http.StatusNotFound)
	default:
		h.log.Error().Err(err).Msg("storage failure")
		h.writeError(w, "Internal server error", err.Error(), http.StatusInternalServerError)
	}
}

func (h *NoteHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("encode response")
	}
}

func (h *NoteHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Details: details,
	}); err != nil {
		h.log.Error().Err(err).Msg("encode error response")
	}
}
