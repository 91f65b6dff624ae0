// Package suggestion implements the name board: guests propose baby names,
// everyone sees the tally, and each proposal can be voted up.
package suggestion

import (
	"context"
	"fmt"
	"strings"

	"naamkaran/pkg/domain"
	"naamkaran/pkg/serrors"
	"naamkaran/pkg/storage"
)

// maxNameLength bounds guest-submitted names and meanings.
const maxNameLength = 100

// service is the concrete implementation of the Service interface backed by
// the storage layer.
type service struct {
	storage storage.Storage
}

// List returns all suggestions ordered by votes, most popular first.
func (s service) List(ctx context.Context) ([]domain.Suggestion, error) {
	suggestions, err := s.storage.Suggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list suggestions: %w", err)
	}

	return suggestions, nil
}

// Add stores a new guest suggestion. The submitter's own vote counts, so new
// suggestions start at one vote.
func (s service) Add(ctx context.Context, name, meaning string) (*domain.Suggestion, error) {
	name = strings.TrimSpace(name)
	meaning = strings.TrimSpace(meaning)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}
	if len(name) > maxNameLength || len(meaning) > maxNameLength {
		return nil, serrors.With(serrors.ErrBadRequest, "name or meaning too long")
	}

	stored, err := s.storage.StoreSuggestion(ctx, domain.Suggestion{
		Name:    name,
		Meaning: meaning,
		Votes:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store suggestion: %w", err)
	}

	return stored, nil
}

// Vote increments the vote count of an existing suggestion and returns the
// updated row. Voting for an unknown suggestion is a not-found error.
func (s service) Vote(ctx context.Context, id domain.SuggestionID) (*domain.Suggestion, error) {
	updated, err := s.storage.VoteForSuggestion(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not vote for suggestion: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "suggestion not found")
	}

	return updated, nil
}

// New creates a new Service instance backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{
		storage: storage,
	}
}
