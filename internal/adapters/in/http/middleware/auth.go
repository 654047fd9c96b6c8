// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	userdom "leaguehub/internal/domain/user"
)

// FirebaseAuthClient is an alias so RouterDeps can carry the concrete
// client without importing the firebase package everywhere.
type FirebaseAuthClient = fbauth.Client

// context keys use a dedicated type to avoid collisions (SA1029).
type ctxKey struct{ name string }

var (
	ctxKeyUser  = ctxKey{name: "currentUser"}
	ctxKeyUID   = ctxKey{name: "uid"}
	ctxKeyEmail = ctxKey{name: "email"}
)

// AuthMiddleware verifies "Authorization: Bearer <ID_TOKEN>" against
// Firebase Auth and loads the matching user account into the request
// context. Suspended accounts are rejected outright.
type AuthMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
	UserRepo     userdom.Repository
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FirebaseAuth == nil || m.UserRepo == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		uid, email, ok := m.verifyBearer(w, r)
		if !ok {
			return
		}

		u, err := m.UserRepo.GetByID(r.Context(), uid)
		if err != nil {
			http.Error(w, "account not found", http.StatusForbidden)
			return
		}
		if u.Status == userdom.StatusSuspended {
			http.Error(w, "account suspended", http.StatusForbidden)
			return
		}

		ctx := ContextWithUser(r.Context(), u)
		ctx = context.WithValue(ctx, ctxKeyUID, uid)
		ctx = context.WithValue(ctx, ctxKeyEmail, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifiedOnly validates the bearer token without requiring an account
// record yet. Used by the registration endpoint, which runs after the
// identity provider signup but before the profile exists.
func (m *AuthMiddleware) VerifiedOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FirebaseAuth == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		uid, email, ok := m.verifyBearer(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUID, uid)
		ctx = context.WithValue(ctx, ctxKeyEmail, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) verifyBearer(w http.ResponseWriter, r *http.Request) (uid, email string, ok bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
		return "", "", false
	}

	idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if idToken == "" {
		http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
		return "", "", false
	}

	token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return "", "", false
	}

	uid = strings.TrimSpace(token.UID)
	if uid == "" {
		http.Error(w, "invalid uid in token", http.StatusUnauthorized)
		return "", "", false
	}

	if v, ok := token.Claims["email"].(string); ok {
		email = strings.TrimSpace(v)
	}
	return uid, email, true
}

// ContextWithUser returns ctx carrying u as the authenticated account.
// Handler uses it; handler tests use it to stand in for the full chain.
func ContextWithUser(ctx context.Context, u userdom.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

// CurrentUser returns the authenticated account loaded by Handler.
func CurrentUser(r *http.Request) (userdom.User, bool) {
	u, ok := r.Context().Value(ctxKeyUser).(userdom.User)
	return u, ok
}

// CurrentUIDAndEmail returns the verified token identity. Available under
// both Handler and VerifiedOnly.
func CurrentUIDAndEmail(r *http.Request) (uid, email string, ok bool) {
	uid, _ = r.Context().Value(ctxKeyUID).(string)
	email, _ = r.Context().Value(ctxKeyEmail).(string)
	return uid, email, uid != ""
}
