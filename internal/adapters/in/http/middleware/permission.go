// internal/adapters/in/http/middleware/permission.go
package middleware

import (
	"net/http"

	roledom "leaguehub/internal/domain/role"
)

// RequirePermission gates a route on the current user's materialized
// permission set. Must run below AuthMiddleware.Handler. A missing user
// or missing permission degrades to 403; the check itself never fails.
func RequirePermission(p roledom.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok || !roledom.HasPermission(u.Permissions, p) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyPermission is the any-of variant used by routes that several
// roles may reach.
func RequireAnyPermission(ps ...roledom.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok || !roledom.HasAnyPermission(u.Permissions, ps...) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
