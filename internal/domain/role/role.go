// internal/domain/role/role.go
package role

import "strings"

// Role is one of the fixed privilege tiers of the league.
// The set is closed at build time; privilege is determined by each
// role's permission set in the catalog, not by ordinal comparison.
type Role string

const (
	Member     Role = "member"
	Organizer  Role = "organizer"
	Admin      Role = "admin"
	SuperAdmin Role = "super_admin"
)

// All returns every defined role in ascending-privilege order.
func All() []Role {
	return []Role{Member, Organizer, Admin, SuperAdmin}
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case Member, Organizer, Admin, SuperAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// Parse maps a raw string (persistence / wire boundary) onto a Role.
// Unknown strings return ok=false; callers must treat that as
// "no privileges", never as an error.
func Parse(s string) (Role, bool) {
	r := Role(strings.TrimSpace(s))
	if !r.Valid() {
		return "", false
	}
	return r, true
}
