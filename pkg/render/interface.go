// Package render defines the abstraction for turning an invitation card into
// a raster image, plus the HTML card document that renderers capture.
package render

import (
	"context"
	"naamkaran/pkg/domain"
)

// Renderer is the abstraction for card renderers. Implementations lay out the
// invitation card for the given guest and capture it as an encoded image.
//
//go:generate mockgen -package mockrender -source=interface.go -destination=mock/mockrender.go *
type Renderer interface {
	// RenderCard produces the finished invitation image for guestName.
	// A nil image together with a non-nil error means nothing usable was
	// captured and the caller must not proceed with delivery.
	RenderCard(ctx context.Context, guestName string) (*domain.RenderedImage, error)
}
