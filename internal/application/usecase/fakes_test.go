package usecase

import (
	"context"
	"fmt"
	"sync"

	invdom "leaguehub/internal/domain/invitation"
	userdom "leaguehub/internal/domain/user"
)

// In-memory ports for usecase tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]userdom.User
}

func newFakeUserRepo(seed ...userdom.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]userdom.User)}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return userdom.User{}, userdom.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]userdom.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u userdom.User) (userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; ok {
		return userdom.User{}, userdom.ErrConflict
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, patch userdom.Patch) (userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	patch.Apply(&u)
	r.users[id] = u
	return u, nil
}

type fakeInvitationRepo struct {
	mu          sync.Mutex
	invitations map[string]invdom.Invitation
	seq         int
}

func newFakeInvitationRepo(seed ...invdom.Invitation) *fakeInvitationRepo {
	r := &fakeInvitationRepo{invitations: make(map[string]invdom.Invitation)}
	for _, inv := range seed {
		r.invitations[inv.ID] = inv
	}
	return r
}

func (r *fakeInvitationRepo) GetByID(_ context.Context, id string) (invdom.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[id]
	if !ok {
		return invdom.Invitation{}, invdom.ErrNotFound
	}
	return inv, nil
}

func (r *fakeInvitationRepo) FindPendingByEmail(_ context.Context, email string) (invdom.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *invdom.Invitation
	for _, inv := range r.invitations {
		inv := inv
		if inv.Email != email || inv.Status != invdom.StatusPending {
			continue
		}
		if found == nil || inv.CreatedAt.After(found.CreatedAt) {
			found = &inv
		}
	}
	if found == nil {
		return invdom.Invitation{}, invdom.ErrNotFound
	}
	return *found, nil
}

func (r *fakeInvitationRepo) List(_ context.Context) ([]invdom.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]invdom.Invitation, 0, len(r.invitations))
	for _, inv := range r.invitations {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeInvitationRepo) Create(_ context.Context, inv invdom.Invitation) (invdom.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inv.ID == "" {
		r.seq++
		inv.ID = fmt.Sprintf("inv-%d", r.seq)
	}
	r.invitations[inv.ID] = inv
	return inv, nil
}

func (r *fakeInvitationRepo) UpdateStatus(_ context.Context, id string, status invdom.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[id]
	if !ok {
		return invdom.ErrNotFound
	}
	inv.Status = status
	r.invitations[id] = inv
	return nil
}

func (r *fakeInvitationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invitations[id]; !ok {
		return invdom.ErrNotFound
	}
	delete(r.invitations, id)
	return nil
}

type sentMail struct {
	Invitation  invdom.Invitation
	DisplayName string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendInvitationEmail(_ context.Context, inv invdom.Invitation, displayName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{Invitation: inv, DisplayName: displayName})
	return nil
}
