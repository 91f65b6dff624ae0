// Package mailer defines the abstraction for delivering rendered invitations
// to guests over email.
package mailer

import "context"

// Invitation is one outbound invitation email: the recipient, the guest name
// used in the subject and body, and the rendered card attached as PNG bytes.
type Invitation struct {
	To         string
	GuestName  string
	Attachment []byte
}

// Courier is the abstraction for email delivery backends.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Courier interface {
	// SendInvitation delivers the invitation to its recipient. It returns an
	// error when the message could not be handed off to the mail server.
	SendInvitation(ctx context.Context, invitation Invitation) error
}
