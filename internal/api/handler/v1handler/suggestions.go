package v1handler

import (
	"net/http"

	"naamkaran/pkg/domain"
	"naamkaran/pkg/serrors"

	"github.com/google/uuid"
)

// ListSuggestions returns all name suggestions ordered by votes.
func (h *Handler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.deps.Suggestions.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)

		return
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}

	respondJSON(w, http.StatusOK, suggestions)
}

type addSuggestionRequest struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// AddSuggestion stores a guest's name proposal and returns the stored row.
func (h *Handler) AddSuggestion(w http.ResponseWriter, r *http.Request) {
	var req addSuggestionRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	stored, err := h.deps.Suggestions.Add(r.Context(), req.Name, req.Meaning)
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, stored)
}

// VoteSuggestion increments the vote count of the suggestion named in the
// path and returns the updated row.
func (h *Handler) VoteSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid suggestion id"))

		return
	}

	updated, err := h.deps.Suggestions.Vote(r.Context(), domain.SuggestionID(id))
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, updated)
}
