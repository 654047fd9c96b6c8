// internal/adapters/out/mail/invitation_mailer.go
package mail

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	invdom "leaguehub/internal/domain/invitation"
)

// InvitationMailer implements usecase.InvitationMailerPort on top of an
// EmailClient. It composes the signup link the invited person follows:
//
//	https://league.example.com/register?invite=<email>
type InvitationMailer struct {
	client      EmailClient
	fromAddress string
	appBaseURL  string // e.g. "https://league.example.com"
}

func NewInvitationMailer(client EmailClient, fromAddress, appBaseURL string) *InvitationMailer {
	return &InvitationMailer{
		client:      client,
		fromAddress: fromAddress,
		appBaseURL:  strings.TrimRight(appBaseURL, "/"),
	}
}

func (m *InvitationMailer) buildRegisterURL(email string) string {
	return fmt.Sprintf("%s/register?invite=%s", m.appBaseURL, url.QueryEscape(email))
}

func (m *InvitationMailer) SendInvitationEmail(
	ctx context.Context,
	inv invdom.Invitation,
	roleDisplayName string,
) error {
	registerURL := m.buildRegisterURL(inv.Email)

	subject := fmt.Sprintf("You have been invited to LeagueHub as %s", roleDisplayName)

	body := fmt.Sprintf(
		`%s has invited you to join LeagueHub with the role "%s".

Create your account using this email address to accept the invitation:

  %s

The invitation expires on %s. If you were not expecting this message,
you can ignore it.

--
LeagueHub`,
		inviterLine(inv.InvitedByName),
		roleDisplayName,
		registerURL,
		inv.ExpiresAt.Format("Mon, 2 Jan 2006"),
	)

	return m.client.Send(ctx, m.fromAddress, inv.Email, subject, body)
}

func inviterLine(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "A league administrator"
	}
	return name
}
