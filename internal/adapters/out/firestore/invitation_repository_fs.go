// internal/adapters/out/firestore/invitation_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invdom "leaguehub/internal/domain/invitation"
)

// InvitationRepositoryFS is the Firestore implementation of
// invdom.Repository.
//
// Collection: "invitations"
// Document ID: a UUID assigned on create.
//
// Firestore cannot express the one-pending-per-email constraint, so this
// adapter relies on the usecase's check-then-create; two racing creates
// can still produce duplicate pending records (known gap, see the
// Postgres adapter for the strict variant).
type InvitationRepositoryFS struct {
	Client *firestore.Client
}

var _ invdom.Repository = (*InvitationRepositoryFS)(nil)

func NewInvitationRepositoryFS(client *firestore.Client) *InvitationRepositoryFS {
	return &InvitationRepositoryFS{Client: client}
}

func (r *InvitationRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("invitations")
}

func (r *InvitationRepositoryFS) GetByID(ctx context.Context, id string) (invdom.Invitation, error) {
	if r.Client == nil {
		return invdom.Invitation{}, errors.New("firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return invdom.Invitation{}, invdom.ErrNotFound
	}

	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return invdom.Invitation{}, invdom.ErrNotFound
		}
		return invdom.Invitation{}, err
	}
	return readInvitationSnapshot(doc)
}

// FindPendingByEmail returns the newest pending record for email.
// Accepted/expired records for the same email may coexist historically
// and are never returned.
func (r *InvitationRepositoryFS) FindPendingByEmail(ctx context.Context, email string) (invdom.Invitation, error) {
	if r.Client == nil {
		return invdom.Invitation{}, errors.New("firestore client is nil")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return invdom.Invitation{}, invdom.ErrNotFound
	}

	it := r.col().
		Where("email", "==", email).
		Where("status", "==", string(invdom.StatusPending)).
		OrderBy("createdAt", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return invdom.Invitation{}, invdom.ErrNotFound
	}
	if err != nil {
		return invdom.Invitation{}, err
	}
	return readInvitationSnapshot(doc)
}

func (r *InvitationRepositoryFS) List(ctx context.Context) ([]invdom.Invitation, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var out []invdom.Invitation
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		inv, err := readInvitationSnapshot(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}

func (r *InvitationRepositoryFS) Create(ctx context.Context, inv invdom.Invitation) (invdom.Invitation, error) {
	if r.Client == nil {
		return invdom.Invitation{}, errors.New("firestore client is nil")
	}

	if strings.TrimSpace(inv.ID) == "" {
		inv.ID = uuid.NewString()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	if _, err := r.col().Doc(inv.ID).Create(ctx, inv); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return invdom.Invitation{}, invdom.ErrDuplicatePending
		}
		return invdom.Invitation{}, err
	}
	return inv, nil
}

func (r *InvitationRepositoryFS) UpdateStatus(ctx context.Context, id string, s invdom.Status) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return invdom.ErrNotFound
	}

	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(s)},
	})
	if status.Code(err) == codes.NotFound {
		return invdom.ErrNotFound
	}
	return err
}

func (r *InvitationRepositoryFS) Delete(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return invdom.ErrNotFound
	}

	ref := r.col().Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return invdom.ErrNotFound
		}
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}

func readInvitationSnapshot(doc *firestore.DocumentSnapshot) (invdom.Invitation, error) {
	var inv invdom.Invitation
	if err := doc.DataTo(&inv); err != nil {
		return invdom.Invitation{}, err
	}
	if inv.ID == "" {
		inv.ID = doc.Ref.ID
	}
	return inv, nil
}
