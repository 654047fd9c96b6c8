// internal/domain/invitation/entity.go
package invitation

import (
	"errors"
	"regexp"
	"strings"
	"time"

	roledom "leaguehub/internal/domain/role"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Status of an invitation. pending is the only live state; accepted and
// expired are terminal. Cancellation deletes the record instead of
// transitioning it.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusExpired  Status = "expired"
)

// TTL is the fixed validity window applied at creation time.
// Not configurable per call.
const TTL = 7 * 24 * time.Hour

// Invitation is a pending grant of an elevated role to an email address
// that has no account yet. Only organizer and admin are invitable; there
// is no invitation path to super_admin.
type Invitation struct {
	ID            string       `json:"id" firestore:"id"`
	Email         string       `json:"email" firestore:"email"`
	Role          roledom.Role `json:"role" firestore:"role"`
	InvitedBy     string       `json:"invitedBy" firestore:"invitedBy"`
	InvitedByName string       `json:"invitedByName" firestore:"invitedByName"`
	Status        Status       `json:"status" firestore:"status"`
	ExpiresAt     time.Time    `json:"expiresAt" firestore:"expiresAt"`
	CreatedAt     time.Time    `json:"createdAt" firestore:"createdAt"`
}

var (
	ErrInvalidEmail     = errors.New("invitation: invalid email")
	ErrInvalidInviter   = errors.New("invitation: invalid inviter")
	ErrRoleNotInvitable = errors.New("invitation: role is not invitable")
	ErrNotPending       = errors.New("invitation: not pending")
	ErrExpired          = errors.New("invitation: expired")
	ErrNotFound         = errors.New("invitation: not found")
	ErrDuplicatePending = errors.New("invitation: pending invitation already exists for email")
)

// Invitable reports whether r may be granted through an invitation.
func Invitable(r roledom.Role) bool {
	return r == roledom.Organizer || r == roledom.Admin
}

// New constructs a pending invitation expiring TTL after now.
// The ID is left empty; repositories assign one on create.
func New(email string, r roledom.Role, invitedBy, invitedByName string, now time.Time) (Invitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !emailRe.MatchString(email) {
		return Invitation{}, ErrInvalidEmail
	}
	if !Invitable(r) {
		return Invitation{}, ErrRoleNotInvitable
	}
	invitedBy = strings.TrimSpace(invitedBy)
	if invitedBy == "" {
		return Invitation{}, ErrInvalidInviter
	}
	return Invitation{
		Email:         email,
		Role:          r,
		InvitedBy:     invitedBy,
		InvitedByName: strings.TrimSpace(invitedByName),
		Status:        StatusPending,
		ExpiresAt:     now.Add(TTL),
		CreatedAt:     now,
	}, nil
}

// Expired reports whether the validity window has passed, regardless of
// the stored status. No background sweeper exists; callers check this at
// read time.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Acceptable reports whether the invitation can still be consumed.
func (i Invitation) Acceptable(now time.Time) bool {
	return i.Status == StatusPending && !i.Expired(now)
}

// Accept transitions pending → accepted. Rejects non-pending records and
// records whose expiry has passed even while still marked pending.
func (i *Invitation) Accept(now time.Time) error {
	if i.Status != StatusPending {
		return ErrNotPending
	}
	if i.Expired(now) {
		return ErrExpired
	}
	i.Status = StatusAccepted
	return nil
}

// MarkExpired transitions pending → expired. No-op for terminal states.
func (i *Invitation) MarkExpired() {
	if i.Status == StatusPending {
		i.Status = StatusExpired
	}
}

// DDL reference (for schema alignment with the Postgres adapter).
// The partial unique index enforces the one-pending-per-email invariant
// at the storage layer, closing the check-then-create race.
const InvitationsTableDDL = `
CREATE TABLE invitations (
  id UUID PRIMARY KEY,
  email VARCHAR(255) NOT NULL,
  role TEXT NOT NULL,
  invited_by TEXT NOT NULL,
  invited_by_name TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL,
  expires_at TIMESTAMPTZ NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX invitations_pending_email_uidx
  ON invitations (email) WHERE status = 'pending';
`
