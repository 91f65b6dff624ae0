package v1handler

import (
	"net/http"

	"naamkaran/pkg/logger"
	"naamkaran/pkg/namegen"

	"go.uber.org/zap"
)

type generateNamesRequest struct {
	Theme string `json:"theme"`
}

// GenerateNames produces themed name ideas. A failing generator degrades to
// an empty list rather than an error so the board stays usable when the AI
// backend is down.
func (h *Handler) GenerateNames(w http.ResponseWriter, r *http.Request) {
	var req generateNamesRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	ideas, err := h.deps.Names.GenerateNames(r.Context(), req.Theme)
	if err != nil {
		logger.Error(r.Context(), "name generation failed", zap.Error(err))
		ideas = []namegen.NameIdea{}
	}
	if ideas == nil {
		ideas = []namegen.NameIdea{}
	}

	respondJSON(w, http.StatusOK, ideas)
}
