// Package namegen defines the abstraction for producing baby name ideas with
// their meanings, themed by the caller.
package namegen

import "context"

// NameIdea is a single suggested name with its meaning.
type NameIdea struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// Generator is the abstraction for name idea providers.
//
//go:generate mockgen -package mocknamegen -source=interface.go -destination=mock/mocknamegen.go *
type Generator interface {
	// GenerateNames produces name ideas for the given theme.
	GenerateNames(ctx context.Context, theme string) ([]NameIdea, error)
}
