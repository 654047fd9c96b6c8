// internal/domain/role/catalog.go
package role

// Definition carries the catalog metadata for one role:
// display strings, the granted permission set (insertion order preserved),
// and the roles this role may assign to other users.
type Definition struct {
	Name        Role         `json:"name" firestore:"name"`
	DisplayName string       `json:"displayName" firestore:"displayName"`
	Description string       `json:"description" firestore:"description"`
	Permissions []Permission `json:"permissions" firestore:"permissions"`
	CanAssign   []Role       `json:"canAssignRoles,omitempty" firestore:"canAssignRoles,omitempty"`
}

// Catalog is the single source of truth for role metadata.
// It is an immutable value: build it once with NewCatalog and inject it;
// there is no runtime mutation API.
type Catalog struct {
	defs  []Definition
	index map[Role]int
}

// NewCatalog returns the static league catalog.
func NewCatalog() *Catalog {
	defs := []Definition{
		{
			Name:        Member,
			DisplayName: "Member",
			Description: "Regular league member with basic viewing access",
			Permissions: []Permission{
				PermViewTeams,
				PermViewPlayers,
				PermViewMatches,
				PermViewStandings,
			},
		},
		{
			Name:        Organizer,
			DisplayName: "Organizer",
			Description: "League organizer who can manage matches and basic league operations",
			Permissions: []Permission{
				PermViewTeams,
				PermViewPlayers,
				PermViewMatches,
				PermCreateMatches,
				PermEditMatches,
				PermManageLiveMatches,
				PermViewStandings,
				PermTransferPlayers,
			},
		},
		{
			Name:        Admin,
			DisplayName: "Administrator",
			Description: "League administrator with full management capabilities",
			Permissions: []Permission{
				PermViewUsers,
				PermViewTeams,
				PermCreateTeams,
				PermEditTeams,
				PermViewPlayers,
				PermCreatePlayers,
				PermEditPlayers,
				PermTransferPlayers,
				PermViewMatches,
				PermCreateMatches,
				PermEditMatches,
				PermDeleteMatches,
				PermManageLiveMatches,
				PermViewStandings,
				PermManageLeagueSettings,
				PermViewAnalytics,
			},
		},
		{
			Name:        SuperAdmin,
			DisplayName: "Super Administrator",
			Description: "System super administrator with full system access",
			Permissions: []Permission{
				PermSystemAdmin,
				PermManageUsers,
				PermInviteUsers,
				PermAssignRoles,
				PermViewUsers,
				PermViewTeams,
				PermCreateTeams,
				PermEditTeams,
				PermDeleteTeams,
				PermViewPlayers,
				PermCreatePlayers,
				PermEditPlayers,
				PermDeletePlayers,
				PermTransferPlayers,
				PermViewMatches,
				PermCreateMatches,
				PermEditMatches,
				PermDeleteMatches,
				PermManageLiveMatches,
				PermViewStandings,
				PermManageLeagueSettings,
				PermViewAnalytics,
			},
			CanAssign: []Role{Admin, Organizer},
		},
	}

	index := make(map[Role]int, len(defs))
	for i, d := range defs {
		index[d.Name] = i
	}
	return &Catalog{defs: defs, index: index}
}

// Definitions returns all role definitions in catalog order.
// The returned slice is a copy; permission slices inside are shared and
// must be treated as read-only.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// PermissionsFor returns the permission set for a known role.
// Unknown roles yield an empty set, never an error: UI call sites must
// be able to call this defensively.
func (c *Catalog) PermissionsFor(r Role) []Permission {
	i, ok := c.index[r]
	if !ok {
		return nil
	}
	return append([]Permission(nil), c.defs[i].Permissions...)
}

// DisplayNameFor returns the display name, falling back to the raw
// role identifier when the role is unknown.
func (c *Catalog) DisplayNameFor(r Role) string {
	i, ok := c.index[r]
	if !ok {
		return string(r)
	}
	return c.defs[i].DisplayName
}

// DescriptionFor returns the description, or "" for an unknown role.
func (c *Catalog) DescriptionFor(r Role) string {
	i, ok := c.index[r]
	if !ok {
		return ""
	}
	return c.defs[i].Description
}

// AssignableRolesFor returns the roles r is permitted to grant to
// others; empty for roles without an assignable-roles entry.
func (c *Catalog) AssignableRolesFor(r Role) []Role {
	i, ok := c.index[r]
	if !ok {
		return nil
	}
	return append([]Role(nil), c.defs[i].CanAssign...)
}
