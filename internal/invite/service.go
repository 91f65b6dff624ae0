// Package invite orchestrates producing a guest's invitation card and getting
// it to them, either as a local PNG download or as an email through the relay.
package invite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"naamkaran/pkg/domain"
	"naamkaran/pkg/render"
	"naamkaran/pkg/serrors"
)

// Dispatcher hands a rendered invitation to the mail relay. It is satisfied
// by relay.Client.
type Dispatcher interface {
	SendInvite(ctx context.Context, email, guestName string, image *domain.RenderedImage) (domain.DeliveryOutcome, error)
}

// Service renders invitation cards and dispatches them. The card is always
// rendered before any delivery is attempted, so a failed render never results
// in a half-delivered invitation.
type Service struct {
	renderer   render.Renderer
	dispatcher Dispatcher
}

// New creates a Service from the renderer and dispatcher.
func New(renderer render.Renderer, dispatcher Dispatcher) *Service {
	return &Service{
		renderer:   renderer,
		dispatcher: dispatcher,
	}
}

// Download renders the guest's card and writes it into dir as a PNG. It
// returns the full path of the written file.
func (s *Service) Download(ctx context.Context, guestName, dir string) (string, error) {
	if guestName == "" {
		return "", serrors.With(serrors.ErrBadRequest, "guest name is required")
	}

	image, err := s.renderer.RenderCard(ctx, guestName)
	if err != nil {
		return "", fmt.Errorf("could not render card: %w", err)
	}

	raw, err := image.Bytes()
	if err != nil {
		return "", fmt.Errorf("could not decode rendered card: %w", err)
	}

	path := filepath.Join(dir, domain.DownloadFilename(guestName))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("could not write card: %w", err)
	}

	return path, nil
}

// Email renders the guest's card and submits it to the relay for delivery.
// The returned outcome carries the relay's verdict, including the generic
// connect-failure message when the relay is unreachable.
func (s *Service) Email(ctx context.Context, guestName, email string) (domain.DeliveryOutcome, error) {
	if guestName == "" {
		return domain.DeliveryOutcome{}, serrors.With(serrors.ErrBadRequest, "guest name is required")
	}
	if !domain.ValidEmailAddress(email) {
		return domain.DeliveryOutcome{}, serrors.With(serrors.ErrBadRequest, "invalid email address")
	}

	image, err := s.renderer.RenderCard(ctx, guestName)
	if err != nil {
		return domain.DeliveryOutcome{}, fmt.Errorf("could not render card: %w", err)
	}

	outcome, err := s.dispatcher.SendInvite(ctx, email, guestName, image)
	if err != nil {
		return domain.DeliveryOutcome{}, fmt.Errorf("could not dispatch invitation: %w", err)
	}

	return outcome, nil
}
