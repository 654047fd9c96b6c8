// internal/application/usecase/user_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	roledom "leaguehub/internal/domain/role"
	userdom "leaguehub/internal/domain/user"
)

var ErrRoleNotAssignable = errors.New("usecase: acting role may not assign target role")

// UserAdminPort covers the administrator operations over user accounts.
type UserAdminPort interface {
	GetByID(ctx context.Context, id string) (userdom.User, error)
	List(ctx context.Context) ([]userdom.User, error)
	// AssignRole changes the target account's role and rewrites its
	// materialized permissions from the catalog. Rejected with
	// ErrRoleNotAssignable when the catalog does not allow the actor's
	// role to grant newRole.
	AssignRole(ctx context.Context, actorID, targetID string, newRole roledom.Role) (userdom.User, error)
	// SetStatus transitions the account between active/suspended/pending.
	SetStatus(ctx context.Context, targetID, status string) (userdom.User, error)
	// ResyncPermissions re-derives the target's materialized permissions
	// from the current catalog. Explicit administrative action: catalog
	// edits never propagate to accounts silently.
	ResyncPermissions(ctx context.Context, targetID string) (userdom.User, error)
}

// UserAdminService implements UserAdminPort.
type UserAdminService struct {
	users   userdom.Repository
	catalog *roledom.Catalog
}

func NewUserAdminService(users userdom.Repository, catalog *roledom.Catalog) *UserAdminService {
	return &UserAdminService{users: users, catalog: catalog}
}

func (s *UserAdminService) GetByID(ctx context.Context, id string) (userdom.User, error) {
	return s.users.GetByID(ctx, strings.TrimSpace(id))
}

func (s *UserAdminService) List(ctx context.Context) ([]userdom.User, error) {
	return s.users.List(ctx)
}

func (s *UserAdminService) AssignRole(
	ctx context.Context,
	actorID, targetID string,
	newRole roledom.Role,
) (userdom.User, error) {
	if !newRole.Valid() {
		return userdom.User{}, userdom.ErrInvalidRole
	}

	actor, err := s.users.GetByID(ctx, strings.TrimSpace(actorID))
	if err != nil {
		return userdom.User{}, err
	}
	if !s.catalog.CanAssignRole(actor.Role, newRole) {
		return userdom.User{}, ErrRoleNotAssignable
	}

	now := time.Now().UTC()
	perms := roledom.Strings(s.catalog.PermissionsFor(newRole))
	assignedBy := actor.ID
	return s.users.Update(ctx, strings.TrimSpace(targetID), userdom.Patch{
		Role:        &newRole,
		Permissions: &perms,
		AssignedBy:  &assignedBy,
		UpdatedAt:   &now,
	})
}

func (s *UserAdminService) SetStatus(ctx context.Context, targetID, status string) (userdom.User, error) {
	status = strings.TrimSpace(status)
	switch status {
	case userdom.StatusActive, userdom.StatusSuspended, userdom.StatusPending:
	default:
		return userdom.User{}, userdom.ErrInvalidStatus
	}

	now := time.Now().UTC()
	return s.users.Update(ctx, strings.TrimSpace(targetID), userdom.Patch{
		Status:    &status,
		UpdatedAt: &now,
	})
}

func (s *UserAdminService) ResyncPermissions(ctx context.Context, targetID string) (userdom.User, error) {
	target, err := s.users.GetByID(ctx, strings.TrimSpace(targetID))
	if err != nil {
		return userdom.User{}, err
	}

	now := time.Now().UTC()
	perms := roledom.Strings(s.catalog.PermissionsFor(target.Role))
	return s.users.Update(ctx, target.ID, userdom.Patch{
		Permissions: &perms,
		UpdatedAt:   &now,
	})
}
