// internal/domain/user/repository_port.go
package user

import "context"

// Repository is the persistence port for the User aggregate.
// Implementations: Firestore (adapters/out/firestore) and Postgres
// (adapters/out/db). External-store failures propagate unchanged; this
// core adds no retry policy.
type Repository interface {
	// GetByID returns ErrNotFound when no account exists for id.
	GetByID(ctx context.Context, id string) (User, error)
	// GetByEmail returns ErrNotFound when no account exists for email.
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	// Create returns ErrConflict when an account with the same id exists.
	Create(ctx context.Context, u User) (User, error)
	// Update applies the non-nil patch fields; ErrNotFound when missing.
	Update(ctx context.Context, id string, patch Patch) (User, error)
}
