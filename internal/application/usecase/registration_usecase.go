// internal/application/usecase/registration_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	invdom "leaguehub/internal/domain/invitation"
	roledom "leaguehub/internal/domain/role"
	userdom "leaguehub/internal/domain/user"
)

// RegisterProfile carries the optional profile fields submitted at signup.
type RegisterProfile struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone,omitempty"`
	FavoriteTeamID string `json:"favoriteTeamId,omitempty"`
}

// RegistrationPort provisions an account for a freshly authenticated
// identity-provider user.
type RegistrationPort interface {
	Register(ctx context.Context, uid, email string, profile RegisterProfile) (userdom.User, error)
}

// RegistrationService implements RegistrationPort.
//
// Flow: look up a pending invitation for the email; if one is live, the
// new account gets the invited role with its catalog permissions and the
// invitation transitions to accepted. Otherwise the account gets the
// member default — that is the expected path, not an error.
//
// Lookup, account creation and invitation update are three separate store
// operations with no cross-operation transaction; a crash in between can
// leave a pending invitation whose email already has an account.
type RegistrationService struct {
	users       userdom.Repository
	invitations invdom.Repository
	catalog     *roledom.Catalog
}

func NewRegistrationService(
	users userdom.Repository,
	invitations invdom.Repository,
	catalog *roledom.Catalog,
) *RegistrationService {
	return &RegistrationService{users: users, invitations: invitations, catalog: catalog}
}

func (s *RegistrationService) Register(
	ctx context.Context,
	uid, email string,
	profile RegisterProfile,
) (userdom.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now().UTC()

	assignedRole := roledom.Member
	var invitedBy string

	inv, err := s.invitations.FindPendingByEmail(ctx, email)
	switch {
	case err == nil && inv.Acceptable(now):
		assignedRole = inv.Role
		invitedBy = inv.InvitedBy
	case err == nil:
		// Still marked pending but past its window: never grants the role.
		if uerr := s.invitations.UpdateStatus(ctx, inv.ID, invdom.StatusExpired); uerr != nil {
			log.Printf("[register] mark expired failed for %s: %v", inv.ID, uerr)
		}
	case errors.Is(err, invdom.ErrNotFound):
		// No invitation: member default.
	default:
		return userdom.User{}, err
	}

	opts := []func(*userdom.User){
		userdom.WithName(profile.FirstName, profile.LastName),
		userdom.WithPhone(profile.Phone),
		userdom.WithFavoriteTeam(profile.FavoriteTeamID),
		userdom.WithRole(assignedRole, roledom.Strings(s.catalog.PermissionsFor(assignedRole))),
	}
	if invitedBy != "" {
		opts = append(opts, userdom.WithAssignedBy(invitedBy))
	}

	u, err := userdom.New(uid, email, now, opts...)
	if err != nil {
		return userdom.User{}, err
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return userdom.User{}, err
	}

	if invitedBy != "" {
		if uerr := s.invitations.UpdateStatus(ctx, inv.ID, invdom.StatusAccepted); uerr != nil {
			// The account exists; surface the inconsistency in the log only.
			log.Printf("[register] accept invitation failed for %s: %v", inv.ID, uerr)
		}
	}

	return created, nil
}
