// internal/adapters/in/http/handlers/invitation_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	httpmw "leaguehub/internal/adapters/in/http/middleware"
	"leaguehub/internal/application/usecase"
	invdom "leaguehub/internal/domain/invitation"
	roledom "leaguehub/internal/domain/role"
)

/*
InvitationHandler
- GET    /api/invitations                list all invitations
- POST   /api/invitations                create + send
- GET    /api/invitations/pending?email= live pending invitation for email
- DELETE /api/invitations/{id}           cancel (idempotent)
*/

type InvitationHandler struct {
	Invitations usecase.InvitationCommandPort
	Queries     usecase.InvitationQueryPort
}

func NewInvitationHandler(invitations usecase.InvitationCommandPort, queries usecase.InvitationQueryPort) *InvitationHandler {
	return &InvitationHandler{Invitations: invitations, Queries: queries}
}

type createInvitationRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *InvitationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/invitations")

	if path == "" || path == "/" {
		switch r.Method {
		case http.MethodGet:
			h.handleList(w, r)
		case http.MethodPost:
			h.handleCreate(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	rest := strings.Trim(path, "/")
	if rest == "pending" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handlePending(w, r)
		return
	}

	if r.Method == http.MethodDelete {
		h.handleCancel(w, r, rest)
		return
	}
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func (h *InvitationHandler) handlePending(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	inv, err := h.Queries.PendingByEmail(r.Context(), email)
	switch {
	case errors.Is(err, invdom.ErrNotFound):
		writeError(w, http.StatusNotFound, "no pending invitation")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, inv)
	}
}

func (h *InvitationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	invs, err := h.Invitations.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if invs == nil {
		invs = []invdom.Invitation{}
	}
	writeJSON(w, http.StatusOK, invs)
}

func (h *InvitationHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpmw.CurrentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	inv, err := h.Invitations.Create(r.Context(), req.Email, roledom.Role(req.Role), actor.ID)
	switch {
	case errors.Is(err, invdom.ErrInvalidEmail),
		errors.Is(err, invdom.ErrRoleNotInvitable):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, invdom.ErrDuplicatePending),
		errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusCreated, inv)
	}
}

func (h *InvitationHandler) handleCancel(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Invitations.Cancel(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
