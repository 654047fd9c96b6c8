package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission([]string{"teams:edit"}, PermEditTeams))
	assert.False(t, HasPermission([]string{"teams:edit"}, PermDeleteTeams))

	// Empty and nil sets are false for everything.
	assert.False(t, HasPermission(nil, PermViewTeams))
	assert.False(t, HasPermission([]string{}, PermViewTeams))
	assert.False(t, HasPermission(nil, PermSystemAdmin))
}

func TestHasPermissionWildcard(t *testing.T) {
	granted := []string{"system:admin"}

	c := NewCatalog()
	for _, d := range c.Definitions() {
		for _, p := range d.Permissions {
			assert.True(t, HasPermission(granted, p), "wildcard should satisfy %s", p)
		}
	}

	// Including permission strings not present anywhere in the catalog.
	assert.True(t, HasPermission(granted, Permission("trophies:engrave")))

	// The wildcard must apply regardless of its position in the set.
	assert.True(t, HasPermission([]string{"teams:view", "system:admin"}, PermDeletePlayers))
}

func TestHasAnyPermission(t *testing.T) {
	granted := []string{"teams:view", "matches:view"}

	assert.True(t, HasAnyPermission(granted, PermDeleteTeams, PermViewMatches))
	assert.False(t, HasAnyPermission(granted, PermDeleteTeams, PermDeleteMatches))

	// Vacuous case: an empty requirement list is never satisfied.
	assert.False(t, HasAnyPermission(granted))
	assert.False(t, HasAnyPermission([]string{"system:admin"}))
}

func TestIsRoleStrict(t *testing.T) {
	assert.True(t, IsRole(Admin, Admin))

	// No implicit hierarchy: super_admin is not "an admin".
	assert.False(t, IsRole(SuperAdmin, Admin))
	assert.False(t, IsRole(Admin, SuperAdmin))
}

func TestCanAssignRole(t *testing.T) {
	c := NewCatalog()

	assert.True(t, c.CanAssignRole(SuperAdmin, Organizer))
	assert.True(t, c.CanAssignRole(SuperAdmin, Admin))
	assert.True(t, c.CanAssignRole(SuperAdmin, Member)) // escape hatch, not in table

	// admin has no assignable-roles entry at all.
	assert.False(t, c.CanAssignRole(Admin, Organizer))
	assert.False(t, c.CanAssignRole(Admin, Member))
	assert.False(t, c.CanAssignRole(Organizer, Member))
	assert.False(t, c.CanAssignRole(Member, Member))

	// No self-assignment path: super_admin is never assignable.
	assert.False(t, c.CanAssignRole(SuperAdmin, SuperAdmin))
	assert.False(t, c.CanAssignRole(Admin, SuperAdmin))
}
