package postgres

import (
	"context"
	"fmt"

	"naamkaran/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	suggestionsTable = "suggestions"
)

// StoreSuggestion inserts a new suggestion and returns the stored row,
// including the generated ID and timestamp.
func (p *PgSQL) StoreSuggestion(ctx context.Context, suggestion domain.Suggestion) (*domain.Suggestion, error) {
	var row PgSuggestion
	row.FromDomain(suggestion)

	var result PgSuggestion
	found, err := p.Builder.Insert(suggestionsTable).
		Rows(row).
		Returning(&PgSuggestion{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store suggestion into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return result.ToDomain(), nil
}

// Suggestions returns all suggestions ordered by votes descending, newest
// first among equal vote counts.
func (p *PgSQL) Suggestions(ctx context.Context) ([]domain.Suggestion, error) {
	var rows []PgSuggestion
	if err := p.Builder.From(suggestionsTable).
		Order(goqu.I("votes").Desc(), goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch suggestions from pg: %w", err)
	}

	return pgSuggestionsToDomain(rows), nil
}

// VoteForSuggestion increments the vote count atomically in the database and
// returns the updated row, or nil when the suggestion does not exist.
func (p *PgSQL) VoteForSuggestion(ctx context.Context, id domain.SuggestionID) (*domain.Suggestion, error) {
	var row PgSuggestion
	found, err := p.Builder.Update(suggestionsTable).
		Set(goqu.Record{
			"votes": goqu.L("votes + 1"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgSuggestion{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not vote for suggestion in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
