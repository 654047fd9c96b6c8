// internal/adapters/in/http/handlers/register_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	httpmw "leaguehub/internal/adapters/in/http/middleware"
	"leaguehub/internal/application/usecase"
	userdom "leaguehub/internal/domain/user"
)

// RegisterHandler provisions the account record after the identity
// provider signup.
//
//   - POST /api/register
//
// Requires a verified bearer token but no existing account
// (middleware.VerifiedOnly). The account's role comes from a pending
// invitation for the token email when one exists, otherwise member.
type RegisterHandler struct {
	Registration usecase.RegistrationPort
}

func NewRegisterHandler(registration usecase.RegistrationPort) *RegisterHandler {
	return &RegisterHandler{Registration: registration}
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	uid, email, ok := httpmw.CurrentUIDAndEmail(r)
	if !ok || email == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var profile usecase.RegisterProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := h.Registration.Register(r.Context(), uid, email, profile)
	switch {
	case errors.Is(err, userdom.ErrConflict):
		writeError(w, http.StatusConflict, "account already exists")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusCreated, u)
	}
}
