package domain

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// PNGEncoding is the only image encoding produced by the renderer.
const PNGEncoding = "png"

// RenderedImage is a single-use snapshot of the invitation card. It is
// produced by the renderer and consumed exactly once by the dispatcher;
// nothing caches it across requests.
type RenderedImage struct {
	// Encoding names the image format; always PNGEncoding today.
	Encoding string `json:"encoding"`
	// Payload holds the base64-encoded image bytes without any data-URI prefix.
	Payload string `json:"payload"`
}

// DataURI returns the image as a browser-style data URI, the wire form the
// mail relay expects.
func (r RenderedImage) DataURI() string {
	return "data:image/" + r.Encoding + ";base64," + r.Payload
}

// Bytes decodes the payload back into raw image bytes.
func (r RenderedImage) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(r.Payload)
	if err != nil {
		return nil, fmt.Errorf("could not decode image payload: %w", err)
	}

	return b, nil
}

// DeliveryOutcome is the terminal result of a single delivery attempt. It is
// held transiently by the caller to render a success or failure indicator and
// reset on the next attempt.
type DeliveryOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// base64Marker separates a data-URI prefix from the encoded payload.
const base64Marker = ";base64,"

// DecodeAttachment turns the wire-form image string into raw attachment
// bytes. A data-URI prefix up to and including the ";base64," marker is
// stripped first; a string without the marker is treated as bare base64.
// Input that does not decode as base64 is rejected instead of silently
// producing a corrupted attachment.
func DecodeAttachment(image string) ([]byte, error) {
	payload := image
	if i := strings.LastIndex(image, base64Marker); i >= 0 {
		payload = image[i+len(base64Marker):]
	}

	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("could not decode attachment data: %w", err)
	}

	return b, nil
}

// whitespaceRuns matches one or more consecutive whitespace characters.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// HyphenateName collapses every whitespace run in a guest name into a single
// hyphen, producing a filesystem- and header-safe name fragment.
func HyphenateName(guestName string) string {
	return whitespaceRuns.ReplaceAllString(strings.TrimSpace(guestName), "-")
}

// AttachmentFilename is the name given to the card attached to the relay
// email, e.g. "Invitation-Rahul-Sharma.png".
func AttachmentFilename(guestName string) string {
	return "Invitation-" + HyphenateName(guestName) + ".png"
}

// DownloadFilename is the name used when the card is saved locally,
// e.g. "Naamkaran-Invitation-Rahul-Sharma.png".
func DownloadFilename(guestName string) string {
	return "Naamkaran-Invitation-" + HyphenateName(guestName) + ".png"
}

// emailShape is the minimal local-part "@" domain-with-dot check applied
// before a delivery request leaves the process.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmailAddress reports whether addr matches the basic email shape the
// dispatcher requires before it will attempt a network call.
func ValidEmailAddress(addr string) bool {
	return emailShape.MatchString(addr)
}
