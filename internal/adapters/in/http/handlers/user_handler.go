// internal/adapters/in/http/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	httpmw "leaguehub/internal/adapters/in/http/middleware"
	"leaguehub/internal/application/usecase"
	roledom "leaguehub/internal/domain/role"
	userdom "leaguehub/internal/domain/user"
)

/*
UserHandler
- GET  /api/users                          list accounts
- GET  /api/users/{id}                     single account
- PUT  /api/users/{id}/role                assign role
- PUT  /api/users/{id}/status              suspend / reactivate
- POST /api/users/{id}/permissions/resync  re-derive permissions from catalog
*/

type UserHandler struct {
	Users usecase.UserAdminPort
}

func NewUserHandler(users usecase.UserAdminPort) *UserHandler {
	return &UserHandler{Users: users}
}

// requireManage rejects writers that only hold the view permission. The
// route-level gate admits viewers so the list/read endpoints work.
func requireManage(w http.ResponseWriter, r *http.Request) bool {
	u, ok := httpmw.CurrentUser(r)
	if !ok || !roledom.HasPermission(u.Permissions, roledom.PermManageUsers) {
		writeError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/users")

	if path == "" || path == "/" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleList(w, r)
		return
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	id := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case len(parts) == 2 && parts[1] == "role" && r.Method == http.MethodPut:
		h.handleUpdateRole(w, r, id)
	case len(parts) == 2 && parts[1] == "status" && r.Method == http.MethodPut:
		h.handleUpdateStatus(w, r, id)
	case len(parts) == 3 && parts[1] == "permissions" && parts[2] == "resync" && r.Method == http.MethodPost:
		h.handleResync(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if users == nil {
		users = []userdom.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	u, err := h.Users.GetByID(r.Context(), id)
	if errors.Is(err, userdom.ErrNotFound) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) handleUpdateRole(w http.ResponseWriter, r *http.Request, id string) {
	actor, ok := httpmw.CurrentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if !roledom.HasPermission(actor.Permissions, roledom.PermAssignRoles) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := h.Users.AssignRole(r.Context(), actor.ID, id, roledom.Role(req.Role))
	switch {
	case errors.Is(err, userdom.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrRoleNotAssignable):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, userdom.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, u)
	}
}

func (h *UserHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request, id string) {
	if !requireManage(w, r) {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := h.Users.SetStatus(r.Context(), id, req.Status)
	switch {
	case errors.Is(err, userdom.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, userdom.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, u)
	}
}

func (h *UserHandler) handleResync(w http.ResponseWriter, r *http.Request, id string) {
	if !requireManage(w, r) {
		return
	}

	u, err := h.Users.ResyncPermissions(r.Context(), id)
	switch {
	case errors.Is(err, userdom.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, u)
	}
}
