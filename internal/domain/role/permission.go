// internal/domain/role/permission.go
package role

// Permission is an opaque "resource:action" identifier.
// Hierarchy is expressed only by which roles carry which permissions,
// with one exception: PermSystemAdmin satisfies every check (see access.go).
type Permission string

const (
	// User management
	PermViewUsers   Permission = "users:view"
	PermManageUsers Permission = "users:manage"
	PermInviteUsers Permission = "users:invite"
	PermAssignRoles Permission = "users:assign_roles"

	// Team management
	PermViewTeams   Permission = "teams:view"
	PermCreateTeams Permission = "teams:create"
	PermEditTeams   Permission = "teams:edit"
	PermDeleteTeams Permission = "teams:delete"

	// Player management
	PermViewPlayers     Permission = "players:view"
	PermCreatePlayers   Permission = "players:create"
	PermEditPlayers     Permission = "players:edit"
	PermDeletePlayers   Permission = "players:delete"
	PermTransferPlayers Permission = "players:transfer"

	// Match management
	PermViewMatches       Permission = "matches:view"
	PermCreateMatches     Permission = "matches:create"
	PermEditMatches       Permission = "matches:edit"
	PermDeleteMatches     Permission = "matches:delete"
	PermManageLiveMatches Permission = "matches:manage_live"

	// League management
	PermViewStandings        Permission = "standings:view"
	PermManageLeagueSettings Permission = "league:manage_settings"

	// System administration
	PermSystemAdmin   Permission = "system:admin"
	PermViewAnalytics Permission = "analytics:view"
)

func (p Permission) String() string { return string(p) }

// Strings converts a permission list to raw strings for materializing
// onto a user account (persistence boundary).
func Strings(ps []Permission) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, string(p))
	}
	return out
}
