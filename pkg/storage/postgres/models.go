package postgres

import (
	"time"

	"naamkaran/pkg/domain"

	"github.com/google/uuid"
)

type PgSuggestion struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name          string `db:"name"`
	Meaning       string `db:"meaning"`
	Votes         int    `db:"votes"`
	IsPreSelected bool   `db:"is_pre_selected"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSuggestion) ToDomain() *domain.Suggestion {
	return &domain.Suggestion{
		ID:            domain.SuggestionID(p.ID),
		Name:          p.Name,
		Meaning:       p.Meaning,
		Votes:         p.Votes,
		IsPreSelected: p.IsPreSelected,
		CreatedAt:     p.CreatedAt,
	}
}

func (p *PgSuggestion) FromDomain(s domain.Suggestion) {
	*p = PgSuggestion{
		ID:            uuid.UUID(s.ID),
		Name:          s.Name,
		Meaning:       s.Meaning,
		Votes:         s.Votes,
		IsPreSelected: s.IsPreSelected,
		CreatedAt:     s.CreatedAt,
	}
}

func pgSuggestionsToDomain(rows []PgSuggestion) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
