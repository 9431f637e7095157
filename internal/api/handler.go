// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/dataset"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/service"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	sessions *service.SessionService
	cache    *dataset.Cache
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(sessions *service.SessionService, cache *dataset.Cache, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		cache:    cache,
		logger:   logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON decodes the request body into v. Returns false (after
// writing a 400) if the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleServiceError translates engine errors to HTTP responses.
// Returns true if an error was handled (caller should return).
// Corruption is reported explicitly so data loss is never invisible.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, dataset.ErrNotImported):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoSession):
		respondError(w, http.StatusConflict, "no session loaded; load a dataset first")
	case errors.Is(err, store.ErrCorrupt):
		h.logger.Error("corrupt session file", "error", err)
		respondError(w, http.StatusInternalServerError, "session file corrupt: "+err.Error())
	default:
		h.logger.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
