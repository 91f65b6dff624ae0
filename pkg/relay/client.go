// Package relay provides the HTTP client that hands a rendered invitation to
// the mail relay endpoint for email delivery.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"naamkaran/pkg/domain"
	"naamkaran/pkg/serrors"
)

// connectFailedMessage is the outcome shown to the guest when the relay
// could not be reached at all.
const connectFailedMessage = "Failed to connect to email server."

// Client submits rendered invitations to the relay's send-invite endpoint.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the relay.
	endpoint   string       // endpoint is the full URL of the send-invite route.
}

// New constructs a Client that posts invitations to the given endpoint using
// the provided http.Client.
func New(httpClient *http.Client, endpoint string) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

// SendInvite posts the rendered card to the relay for delivery to email.
// Validation failures are reported as ErrBadRequest before any network I/O.
// An unreachable relay, a non-2xx answer, or an unreadable body is not an
// error from the guest's point of view: each yields a failed DeliveryOutcome
// with a generic message and a nil error. Only a 2xx JSON verdict is
// returned as-is.
func (c *Client) SendInvite(ctx context.Context, email, guestName string, image *domain.RenderedImage) (domain.DeliveryOutcome, error) {
	if !domain.ValidEmailAddress(email) {
		return domain.DeliveryOutcome{}, serrors.With(serrors.ErrBadRequest, "invalid email address")
	}
	if image == nil {
		return domain.DeliveryOutcome{}, serrors.With(serrors.ErrBadRequest, "missing rendered image")
	}

	type inviteReq struct {
		Email     string `json:"email"`
		GuestName string `json:"guestName"`
		Image     string `json:"image"`
	}
	bodyBytes, err := json.Marshal(inviteReq{Email: email, GuestName: guestName, Image: image.DataURI()})
	if err != nil {
		return domain.DeliveryOutcome{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(string(bodyBytes)))
	if err != nil {
		return domain.DeliveryOutcome{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.DeliveryOutcome{Success: false, Message: connectFailedMessage}, nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.DeliveryOutcome{Success: false, Message: connectFailedMessage}, nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.DeliveryOutcome{Success: false, Message: connectFailedMessage}, nil
	}

	var outcome domain.DeliveryOutcome
	if err := json.Unmarshal(b, &outcome); err != nil {
		return domain.DeliveryOutcome{Success: false, Message: connectFailedMessage}, nil
	}

	return outcome, nil
}
