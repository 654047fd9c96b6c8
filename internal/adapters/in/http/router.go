package httpin

import (
	"net/http"

	"leaguehub/internal/adapters/in/http/handlers"
	"leaguehub/internal/adapters/in/http/middleware"
	"leaguehub/internal/application/usecase"
	roledom "leaguehub/internal/domain/role"
	userdom "leaguehub/internal/domain/user"
)

// RouterDeps collects the usecases and auth dependencies injected from the
// DI container.
type RouterDeps struct {
	FirebaseAuth *middleware.FirebaseAuthClient
	UserRepo     userdom.Repository
	Catalog      *roledom.Catalog

	Registration    usecase.RegistrationPort
	InvitationCmd   usecase.InvitationCommandPort
	InvitationQuery usecase.InvitationQueryPort
	UserAdmin       usecase.UserAdminPort
}

// NewRouter sets up HTTP routing for all endpoints.
//
// /api/register runs under token verification only (the account record
// does not exist yet); everything else under /api runs behind the full
// auth middleware plus a permission gate.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	auth := &middleware.AuthMiddleware{
		FirebaseAuth: deps.FirebaseAuth,
		UserRepo:     deps.UserRepo,
	}

	if deps.Registration != nil {
		mux.Handle("/api/register",
			auth.VerifiedOnly(handlers.NewRegisterHandler(deps.Registration)))
	}

	if deps.InvitationCmd != nil {
		invitations := middleware.RequirePermission(roledom.PermInviteUsers)(
			handlers.NewInvitationHandler(deps.InvitationCmd, deps.InvitationQuery))
		mux.Handle("/api/invitations", auth.Handler(invitations))
		mux.Handle("/api/invitations/", auth.Handler(invitations))
	}

	if deps.UserAdmin != nil {
		users := middleware.RequireAnyPermission(roledom.PermViewUsers, roledom.PermManageUsers)(
			handlers.NewUserHandler(deps.UserAdmin))
		mux.Handle("/api/users", auth.Handler(users))
		mux.Handle("/api/users/", auth.Handler(users))
	}

	if deps.Catalog != nil {
		mux.Handle("/api/roles", auth.Handler(handlers.NewRoleHandler(deps.Catalog)))
	}

	return mux
}
