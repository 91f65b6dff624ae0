package storage

import (
	"context"

	"naamkaran/pkg/domain"
)

// SuggestionStorage defines CRUD and query operations for baby name
// suggestions. Implementations must keep vote increments atomic so concurrent
// votes for the same name are never lost.
type SuggestionStorage interface {
	// StoreSuggestion inserts a new suggestion and returns the stored row as it
	// exists in the database (including generated fields).
	StoreSuggestion(ctx context.Context, suggestion domain.Suggestion) (*domain.Suggestion, error)
	// Suggestions returns every suggestion ordered by votes descending, newest
	// first among equal vote counts.
	Suggestions(ctx context.Context) ([]domain.Suggestion, error)
	// VoteForSuggestion increments the vote count of the suggestion with the
	// given ID and returns the updated row, or nil when no such suggestion
	// exists.
	VoteForSuggestion(ctx context.Context, id domain.SuggestionID) (*domain.Suggestion, error)
}
