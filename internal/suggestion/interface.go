package suggestion

import (
	"context"
	"naamkaran/pkg/domain"
)

//go:generate mockgen -package mocksuggestion -source=interface.go -destination=mock/mocksuggestion.go *
type Service interface {
	List(ctx context.Context) ([]domain.Suggestion, error)
	Add(ctx context.Context, name, meaning string) (*domain.Suggestion, error)
	Vote(ctx context.Context, id domain.SuggestionID) (*domain.Suggestion, error)
}
