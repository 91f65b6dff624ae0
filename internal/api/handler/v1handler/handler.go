// Package v1handler implements the HTTP handlers behind the /api routes:
// the mail relay endpoint, the name suggestion board, and name generation.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"naamkaran/internal/suggestion"
	"naamkaran/pkg/logger"
	"naamkaran/pkg/mailer"
	"naamkaran/pkg/namegen"
	"naamkaran/pkg/serrors"

	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps request bodies. Invitation cards arrive as base64
// PNGs, so the limit is generous.
const DefaultMaxBodyBytes = 10 << 20

// Deps carries the services the handlers delegate to.
type Deps struct {
	Suggestions suggestion.Service
	Courier     mailer.Courier
	Names       namegen.Generator
}

// Options holds handler-level settings.
type Options struct {
	// MaxBodyBytes is the request body size limit. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

type Handler struct {
	deps    Deps
	options Options
}

// New creates a Handler with the given dependencies.
func New(deps Deps, options Options) *Handler {
	if options.MaxBodyBytes <= 0 {
		options.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{
		deps:    deps,
		options: options,
	}
}

// Register attaches all v1 routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	// send-invite keeps its own method check so non-POST requests get the
	// same JSON body clients already expect.
	mux.HandleFunc("/api/send-invite", h.SendInvite)

	mux.HandleFunc("GET /api/suggestions", h.ListSuggestions)
	mux.HandleFunc("POST /api/suggestions", h.AddSuggestion)
	mux.HandleFunc("POST /api/suggestions/{id}/vote", h.VoteSuggestion)
	mux.HandleFunc("POST /api/names/generate", h.GenerateNames)
}

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorMessage is the generic error envelope for the suggestion and name
// generation routes.
type errorMessage struct {
	Message string `json:"message"`
}

// respondError maps domain error kinds to HTTP statuses. Unexpected errors
// are logged and hidden behind a generic message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		respondJSON(w, http.StatusBadRequest, errorMessage{Message: err.Error()})
	case errors.Is(err, serrors.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorMessage{Message: err.Error()})
	default:
		logger.Error(r.Context(), "request failed", zap.String("path", r.URL.Path), zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorMessage{Message: "internal error"})
	}
}

// decodeBody reads a JSON request body into dst, enforcing the body limit.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
