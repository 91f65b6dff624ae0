// Package smtpmail provides a mailer.Courier implementation that delivers
// invitations through an authenticated SMTP server.
package smtpmail

import (
	"context"
	"fmt"
	"io"

	"naamkaran/pkg/domain"
	"naamkaran/pkg/mailer"

	"github.com/go-gomail/gomail"
)

// Options holds the SMTP server credentials and the sender identity used on
// outgoing invitations.
type Options struct {
	Host       string
	Port       int
	Username   string
	Password   string
	SenderName string // SenderName is the display name on the From header.
}

// Courier sends invitation emails over SMTP. It is safe for concurrent use;
// every send opens its own connection.
type Courier struct {
	options Options
}

// New constructs a Courier. It fails when the server address or credentials
// are missing so that misconfiguration surfaces at startup rather than on the
// first guest's invitation.
func New(options Options) (*Courier, error) {
	if options.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if options.Username == "" || options.Password == "" {
		return nil, fmt.Errorf("smtp credentials are required")
	}
	if options.Port <= 0 {
		options.Port = 587
	}
	if options.SenderName == "" {
		options.SenderName = "The Dabhade Family"
	}

	return &Courier{options: options}, nil
}

// SendInvitation builds the invitation message and hands it to the SMTP
// server. The context is checked before dialing since gomail itself does not
// accept one.
func (c *Courier) SendInvitation(ctx context.Context, invitation mailer.Invitation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("could not send invitation: %w", err)
	}

	msg := c.buildMessage(invitation)
	dialer := gomail.NewDialer(c.options.Host, c.options.Port, c.options.Username, c.options.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("could not send invitation: %w", err)
	}

	return nil
}

// buildMessage assembles the full MIME message for one invitation.
func (c *Courier) buildMessage(invitation mailer.Invitation) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(c.options.Username, c.options.SenderName))
	msg.SetHeader("To", invitation.To)
	msg.SetHeader("Subject", "Naamkaran Ceremony Invitation for "+invitation.GuestName)
	msg.SetBody("text/html", invitationBody(invitation.GuestName))
	msg.Attach(domain.AttachmentFilename(invitation.GuestName), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(invitation.Attachment)

		return err
	}))

	return msg
}

func invitationBody(guestName string) string {
	return fmt.Sprintf(`<div style="font-family: serif; color: #451a03; padding: 20px; background-color: #fffcf5; border: 1px solid #fbbf24;">
    <h2 style="color: #d97706;">Namaskar %s,</h2>
    <p>We are absolutely delighted to invite you to the <strong>Naamkaran Ceremony</strong> of our beloved baby boy.</p>
    <p>Please find your personalized 3D-styled invitation card attached to this email.</p>
    <p>We look forward to your blessings and presence.</p>
    <br/>
    <p>Warm Regards,</p>
    <p><strong>The Dabhade Family</strong></p>
</div>`, guestName)
}

// Ensure Courier conforms to the mailer.Courier interface at compile time.
var _ mailer.Courier = (*Courier)(nil)
