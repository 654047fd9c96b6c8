// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdom "leaguehub/internal/domain/user"
)

// UserRepositoryFS is the Firestore implementation of userdom.Repository.
//
// Collection: "users"
// Document ID: the identity provider UID (User.ID).
type UserRepositoryFS struct {
	Client *firestore.Client
}

var _ userdom.Repository = (*UserRepositoryFS)(nil)

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

func (r *UserRepositoryFS) GetByID(ctx context.Context, id string) (userdom.User, error) {
	if r.Client == nil {
		return userdom.User{}, errors.New("firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return userdom.User{}, userdom.ErrNotFound
	}

	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return userdom.User{}, userdom.ErrNotFound
		}
		return userdom.User{}, err
	}
	return readUserSnapshot(doc)
}

func (r *UserRepositoryFS) GetByEmail(ctx context.Context, email string) (userdom.User, error) {
	if r.Client == nil {
		return userdom.User{}, errors.New("firestore client is nil")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return userdom.User{}, userdom.ErrNotFound
	}

	it := r.col().Where("email", "==", email).Limit(1).Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return userdom.User{}, userdom.ErrNotFound
	}
	if err != nil {
		return userdom.User{}, err
	}
	return readUserSnapshot(doc)
}

func (r *UserRepositoryFS) List(ctx context.Context) ([]userdom.User, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var out []userdom.User
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		u, err := readUserSnapshot(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepositoryFS) Create(ctx context.Context, u userdom.User) (userdom.User, error) {
	if r.Client == nil {
		return userdom.User{}, errors.New("firestore client is nil")
	}
	id := strings.TrimSpace(u.ID)
	if id == "" {
		return userdom.User{}, userdom.ErrNotFound
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	if _, err := r.col().Doc(id).Create(ctx, u); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return userdom.User{}, userdom.ErrConflict
		}
		return userdom.User{}, err
	}
	return u, nil
}

// Update reads the document, applies the patch in memory and writes the
// whole entity back. Role changes here are rare enough that last-write-wins
// is acceptable; the document store offers no cheaper partial contract.
func (r *UserRepositoryFS) Update(ctx context.Context, id string, patch userdom.Patch) (userdom.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return userdom.User{}, err
	}

	patch.Apply(&u)
	if u.UpdatedAt == nil {
		now := time.Now().UTC()
		u.UpdatedAt = &now
	}

	if _, err := r.col().Doc(u.ID).Set(ctx, u); err != nil {
		return userdom.User{}, err
	}
	return u, nil
}

func readUserSnapshot(doc *firestore.DocumentSnapshot) (userdom.User, error) {
	var u userdom.User
	if err := doc.DataTo(&u); err != nil {
		return userdom.User{}, err
	}
	if u.ID == "" {
		u.ID = doc.Ref.ID
	}
	return u, nil
}
