// internal/application/usecase/invitation_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	invdom "leaguehub/internal/domain/invitation"
	roledom "leaguehub/internal/domain/role"
	userdom "leaguehub/internal/domain/user"
)

// ==============================
// Outbound Ports
// ==============================

// InvitationMailerPort is the outbound port for sending invitation mail.
// adapters/out/mail.InvitationMailer implements it.
type InvitationMailerPort interface {
	SendInvitationEmail(ctx context.Context, inv invdom.Invitation, roleDisplayName string) error
}

// ==============================
// Usecase errors
// ==============================

var ErrEmailAlreadyRegistered = errors.New("usecase: email already has a registered account")

// ==============================
// Inbound Port (Command)
// ==============================

// InvitationCommandPort creates and cancels invitations on behalf of an
// administrator.
type InvitationCommandPort interface {
	// Create issues a pending invitation and sends the invitation mail.
	// Rejected with invdom.ErrDuplicatePending when a pending invitation
	// already exists for email, and with ErrEmailAlreadyRegistered when
	// an account already exists.
	Create(ctx context.Context, email string, r roledom.Role, inviterID string) (invdom.Invitation, error)
	// Cancel deletes the invitation record. Succeeds as a no-op when the
	// record does not exist.
	Cancel(ctx context.Context, id string) error
	List(ctx context.Context) ([]invdom.Invitation, error)
}

// InvitationCommandService implements InvitationCommandPort.
type InvitationCommandService struct {
	invitations invdom.Repository
	users       userdom.Repository
	catalog     *roledom.Catalog
	mailer      InvitationMailerPort
}

func NewInvitationCommandService(
	invitations invdom.Repository,
	users userdom.Repository,
	catalog *roledom.Catalog,
	mailer InvitationMailerPort,
) *InvitationCommandService {
	return &InvitationCommandService{
		invitations: invitations,
		users:       users,
		catalog:     catalog,
		mailer:      mailer,
	}
}

// Create runs the administrator invite flow:
//  1. resolve the inviter's display name
//  2. reject if the email already belongs to an account
//  3. reject if a pending invitation already exists (check-then-create;
//     the Postgres adapter additionally enforces this on Create)
//  4. persist the pending invitation and send the mail
func (s *InvitationCommandService) Create(
	ctx context.Context,
	email string,
	r roledom.Role,
	inviterID string,
) (invdom.Invitation, error) {
	inviter, err := s.users.GetByID(ctx, strings.TrimSpace(inviterID))
	if err != nil {
		return invdom.Invitation{}, fmt.Errorf("resolve inviter: %w", err)
	}

	inv, err := invdom.New(email, r, inviter.ID, inviter.FullName(), time.Now().UTC())
	if err != nil {
		return invdom.Invitation{}, err
	}

	// An email that already has an account never needs an invitation.
	if _, err := s.users.GetByEmail(ctx, inv.Email); err == nil {
		return invdom.Invitation{}, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, userdom.ErrNotFound) {
		return invdom.Invitation{}, err
	}

	if _, err := s.invitations.FindPendingByEmail(ctx, inv.Email); err == nil {
		return invdom.Invitation{}, invdom.ErrDuplicatePending
	} else if !errors.Is(err, invdom.ErrNotFound) {
		return invdom.Invitation{}, err
	}

	created, err := s.invitations.Create(ctx, inv)
	if err != nil {
		return invdom.Invitation{}, err
	}

	if s.mailer != nil {
		display := s.catalog.DisplayNameFor(created.Role)
		if err := s.mailer.SendInvitationEmail(ctx, created, display); err != nil {
			// The invitation stands even when mail delivery fails; the admin
			// UI lists pending invitations and can re-send.
			log.Printf("[invitation] mail send failed for %s: %v", created.Email, err)
		}
	}

	return created, nil
}

// Cancel deletes the record; a missing id is success from the caller's
// perspective.
func (s *InvitationCommandService) Cancel(ctx context.Context, id string) error {
	err := s.invitations.Delete(ctx, strings.TrimSpace(id))
	if errors.Is(err, invdom.ErrNotFound) {
		return nil
	}
	return err
}

func (s *InvitationCommandService) List(ctx context.Context) ([]invdom.Invitation, error) {
	return s.invitations.List(ctx)
}

// ==============================
// Inbound Port (Query)
// ==============================

// InvitationQueryPort answers "is there a live invitation for this email".
type InvitationQueryPort interface {
	PendingByEmail(ctx context.Context, email string) (invdom.Invitation, error)
}

// InvitationQueryService implements InvitationQueryPort.
type InvitationQueryService struct {
	invitations invdom.Repository
}

func NewInvitationQueryService(invitations invdom.Repository) *InvitationQueryService {
	return &InvitationQueryService{invitations: invitations}
}

// PendingByEmail returns the pending invitation for email, filtering out
// records whose expiry has passed while still marked pending. An expired
// record is transitioned to expired best-effort.
func (s *InvitationQueryService) PendingByEmail(ctx context.Context, email string) (invdom.Invitation, error) {
	inv, err := s.invitations.FindPendingByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return invdom.Invitation{}, err
	}
	if inv.Expired(time.Now().UTC()) {
		if uerr := s.invitations.UpdateStatus(ctx, inv.ID, invdom.StatusExpired); uerr != nil {
			log.Printf("[invitation] mark expired failed for %s: %v", inv.ID, uerr)
		}
		return invdom.Invitation{}, invdom.ErrNotFound
	}
	return inv, nil
}
