package domain

import (
	"time"

	"github.com/google/uuid"
)

// SuggestionID uniquely identifies a baby name suggestion.
// It wraps uuid.UUID to provide type safety at the domain layer.
type SuggestionID uuid.UUID

func (id SuggestionID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText renders the ID in its canonical UUID form so JSON encoding
// produces a string rather than a byte array.
func (id SuggestionID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

func (id *SuggestionID) UnmarshalText(text []byte) error {
	parsed, err := uuid.ParseBytes(text)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = SuggestionID(parsed)

	return nil
}

// Suggestion represents a proposed baby name guests can vote on. A handful of
// pre-selected names are seeded by the family; the rest come from guests.
type Suggestion struct {
	// ID is the unique identifier of the suggestion.
	ID SuggestionID `json:"id"`

	// Name is the proposed baby name.
	Name string `json:"name"`
	// Meaning is a short description of what the name means.
	Meaning string `json:"meaning"`
	// Votes counts how many guests endorsed this name. A fresh suggestion
	// starts at 1, counting its author.
	Votes int `json:"votes"`
	// IsPreSelected marks names seeded by the family rather than suggested
	// by a guest.
	IsPreSelected bool `json:"isPreSelected"`

	// CreatedAt is the time the suggestion was recorded.
	CreatedAt time.Time `json:"createdAt"`
}
