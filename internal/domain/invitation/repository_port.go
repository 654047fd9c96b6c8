// internal/domain/invitation/repository_port.go
package invitation

import "context"

// Repository is the persistence port for invitations.
//
// The Firestore implementation cannot enforce the one-pending-per-email
// invariant; callers perform the FindPendingByEmail check before Create.
// The Postgres implementation additionally enforces it with a partial
// unique index and returns ErrDuplicatePending from Create on violation.
type Repository interface {
	// GetByID returns ErrNotFound when no record exists for id.
	GetByID(ctx context.Context, id string) (Invitation, error)
	// FindPendingByEmail returns the most recent pending invitation for
	// email, or ErrNotFound. Accepted/expired records are never returned.
	FindPendingByEmail(ctx context.Context, email string) (Invitation, error)
	List(ctx context.Context) ([]Invitation, error)
	Create(ctx context.Context, inv Invitation) (Invitation, error)
	// UpdateStatus returns ErrNotFound when no record exists for id.
	UpdateStatus(ctx context.Context, id string, status Status) error
	// Delete returns ErrNotFound when no record exists for id.
	Delete(ctx context.Context, id string) error
}
