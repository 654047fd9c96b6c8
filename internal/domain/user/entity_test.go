package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roledom "leaguehub/internal/domain/role"
)

func TestNewDefaults(t *testing.T) {
	now := time.Now().UTC()

	u, err := New("uid-1", "fan@example.com", now)
	require.NoError(t, err)

	assert.Equal(t, roledom.Member, u.Role)
	assert.Equal(t, StatusActive, u.Status)
	assert.Empty(t, u.Permissions)
	assert.Nil(t, u.AssignedBy)
}

func TestNewValidation(t *testing.T) {
	now := time.Now().UTC()

	_, err := New("", "fan@example.com", now)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = New("uid-1", "not-an-email", now)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = New("uid-1", "fan@example.com", time.Time{})
	assert.ErrorIs(t, err, ErrInvalidCreatedAt)

	_, err = New("uid-1", "fan@example.com", now, WithStatus("banned"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = New("uid-1", "fan@example.com", now, WithRole("overlord", nil))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestNewWithRoleDedupsPermissions(t *testing.T) {
	now := time.Now().UTC()

	u, err := New("uid-1", "fan@example.com", now,
		WithRole(roledom.Organizer, []string{"teams:view", "teams:view", "", "matches:edit"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"teams:view", "matches:edit"}, u.Permissions)
}

func TestAssignRole(t *testing.T) {
	now := time.Now().UTC()
	catalog := roledom.NewCatalog()

	u, err := New("uid-1", "fan@example.com", now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	perms := roledom.Strings(catalog.PermissionsFor(roledom.Admin))
	require.NoError(t, u.AssignRole(roledom.Admin, perms, "uid-super", later))

	assert.Equal(t, roledom.Admin, u.Role)
	assert.Equal(t, perms, u.Permissions)
	require.NotNil(t, u.AssignedBy)
	assert.Equal(t, "uid-super", *u.AssignedBy)
	require.NotNil(t, u.UpdatedAt)
	assert.Equal(t, later, *u.UpdatedAt)

	assert.ErrorIs(t, u.AssignRole("overlord", nil, "uid-super", later), ErrInvalidRole)
}

func TestSetStatus(t *testing.T) {
	now := time.Now().UTC()

	u, err := New("uid-1", "fan@example.com", now)
	require.NoError(t, err)

	require.NoError(t, u.SetStatus(StatusSuspended, now.Add(time.Minute)))
	assert.Equal(t, StatusSuspended, u.Status)

	assert.ErrorIs(t, u.SetStatus("banned", now), ErrInvalidStatus)
}

func TestHasPermission(t *testing.T) {
	now := time.Now().UTC()

	u, err := New("uid-1", "fan@example.com", now,
		WithRole(roledom.Member, []string{"teams:view"}))
	require.NoError(t, err)

	assert.True(t, u.HasPermission(roledom.PermViewTeams))
	assert.False(t, u.HasPermission(roledom.PermEditTeams))
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jo Keeper", User{FirstName: "Jo", LastName: "Keeper"}.FullName())
	assert.Equal(t, "Jo", User{FirstName: "Jo"}.FullName())
	assert.Equal(t, "Keeper", User{LastName: "Keeper"}.FullName())
	assert.Equal(t, "", User{}.FullName())
}

func TestPatchApply(t *testing.T) {
	now := time.Now().UTC()
	u, err := New("uid-1", "fan@example.com", now)
	require.NoError(t, err)

	r := roledom.Organizer
	perms := []string{"matches:edit", "matches:edit"}
	status := StatusPending
	p := Patch{Role: &r, Permissions: &perms, Status: &status}
	p.Apply(&u)

	assert.Equal(t, roledom.Organizer, u.Role)
	assert.Equal(t, []string{"matches:edit"}, u.Permissions)
	assert.Equal(t, StatusPending, u.Status)
	assert.Equal(t, "fan@example.com", u.Email) // untouched
}
