// internal/adapters/in/http/handlers/role_handler.go
package handlers

import (
	"net/http"

	roledom "leaguehub/internal/domain/role"
)

// RoleHandler exposes the static role catalog for frontend display.
//
//   - GET /api/roles
type RoleHandler struct {
	Catalog *roledom.Catalog
}

func NewRoleHandler(catalog *roledom.Catalog) *RoleHandler {
	return &RoleHandler{Catalog: catalog}
}

func (h *RoleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, h.Catalog.Definitions())
}
