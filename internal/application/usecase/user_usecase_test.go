package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roledom "leaguehub/internal/domain/role"
	userdom "leaguehub/internal/domain/user"
)

func memberUser(t *testing.T, id, email string) userdom.User {
	t.Helper()
	catalog := roledom.NewCatalog()
	u, err := userdom.New(id, email, time.Now().UTC(),
		userdom.WithRole(roledom.Member, roledom.Strings(catalog.PermissionsFor(roledom.Member))))
	require.NoError(t, err)
	return u
}

func TestAssignRoleBySuperAdmin(t *testing.T) {
	ctx := context.Background()
	catalog := roledom.NewCatalog()
	users := newFakeUserRepo(superAdminUser(t), memberUser(t, "uid-1", "fan@example.com"))
	svc := NewUserAdminService(users, catalog)

	u, err := svc.AssignRole(ctx, "uid-super", "uid-1", roledom.Organizer)
	require.NoError(t, err)

	assert.Equal(t, roledom.Organizer, u.Role)
	assert.Equal(t, roledom.Strings(catalog.PermissionsFor(roledom.Organizer)), u.Permissions)
	require.NotNil(t, u.AssignedBy)
	assert.Equal(t, "uid-super", *u.AssignedBy)
	assert.NotNil(t, u.UpdatedAt)
}

func TestAssignRoleDenied(t *testing.T) {
	ctx := context.Background()
	catalog := roledom.NewCatalog()

	admin, err := userdom.New("uid-admin", "admin@league.test", time.Now().UTC(),
		userdom.WithRole(roledom.Admin, roledom.Strings(catalog.PermissionsFor(roledom.Admin))))
	require.NoError(t, err)

	users := newFakeUserRepo(admin, superAdminUser(t), memberUser(t, "uid-1", "fan@example.com"))
	svc := NewUserAdminService(users, catalog)

	// admin has no assignable-roles entry in the catalog.
	_, err = svc.AssignRole(ctx, "uid-admin", "uid-1", roledom.Organizer)
	assert.ErrorIs(t, err, ErrRoleNotAssignable)

	// And nobody can hand out super_admin.
	_, err = svc.AssignRole(ctx, "uid-super", "uid-1", roledom.SuperAdmin)
	assert.ErrorIs(t, err, ErrRoleNotAssignable)

	_, err = svc.AssignRole(ctx, "uid-super", "uid-1", "overlord")
	assert.ErrorIs(t, err, userdom.ErrInvalidRole)
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(memberUser(t, "uid-1", "fan@example.com"))
	svc := NewUserAdminService(users, roledom.NewCatalog())

	u, err := svc.SetStatus(ctx, "uid-1", userdom.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, userdom.StatusSuspended, u.Status)

	_, err = svc.SetStatus(ctx, "uid-1", "banned")
	assert.ErrorIs(t, err, userdom.ErrInvalidStatus)

	_, err = svc.SetStatus(ctx, "uid-missing", userdom.StatusActive)
	assert.ErrorIs(t, err, userdom.ErrNotFound)
}

func TestResyncPermissions(t *testing.T) {
	ctx := context.Background()
	catalog := roledom.NewCatalog()

	// Simulate an account materialized before a catalog edit.
	stale, err := userdom.New("uid-1", "fan@example.com", time.Now().UTC(),
		userdom.WithRole(roledom.Organizer, []string{"teams:view"}))
	require.NoError(t, err)

	users := newFakeUserRepo(stale)
	svc := NewUserAdminService(users, catalog)

	u, err := svc.ResyncPermissions(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, roledom.Strings(catalog.PermissionsFor(roledom.Organizer)), u.Permissions)
}
