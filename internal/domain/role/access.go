// internal/domain/role/access.go
package role

// Pure access predicates over a caller-supplied permission set — typically
// the materialized permissions stored on a user account, not a live catalog
// lookup. None of these fail; absence of data degrades to false.

// HasPermission reports whether granted contains required.
// The system:admin wildcard satisfies every check, including permission
// strings that appear nowhere in the catalog. An empty or nil granted set
// is false for every required permission.
func HasPermission(granted []string, required Permission) bool {
	for _, g := range granted {
		if g == string(required) || g == string(PermSystemAdmin) {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether at least one of required is granted.
// An empty required list is false: no requirement is satisfiable by nothing.
func HasAnyPermission(granted []string, required ...Permission) bool {
	for _, p := range required {
		if HasPermission(granted, p) {
			return true
		}
	}
	return false
}

// IsRole is strict equality. There is no wildcard and no hierarchy here:
// super_admin does not satisfy an IsRole(Admin) check even though its
// permission set is a superset. Intentional asymmetry versus HasPermission.
func IsRole(current, expected Role) bool {
	return current == expected
}

// CanAssignRole reports whether acting may grant target to another user.
// super_admin may assign any role independent of the catalog table, so a
// catalog edit that forgets an assignable entry cannot lock super_admin out.
// The escape hatch never covers super_admin itself: there is no
// self-assignment path through this mechanism unless the catalog ever
// lists super_admin as assignable (it does not).
func (c *Catalog) CanAssignRole(acting, target Role) bool {
	if acting == SuperAdmin && target != SuperAdmin {
		return true
	}
	for _, r := range c.AssignableRolesFor(acting) {
		if r == target {
			return true
		}
	}
	return false
}
