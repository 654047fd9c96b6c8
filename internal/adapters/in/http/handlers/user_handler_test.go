package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpmw "leaguehub/internal/adapters/in/http/middleware"
	roledom "leaguehub/internal/domain/role"
	userdom "leaguehub/internal/domain/user"
)

type fakeUserAdmin struct {
	assignCalls int
	lastActor   string
	lastTarget  string
	lastRole    roledom.Role
	assignErr   error

	statusCalls int
	statusErr   error

	users map[string]userdom.User
}

func (f *fakeUserAdmin) GetByID(_ context.Context, id string) (userdom.User, error) {
	u, ok := f.users[id]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserAdmin) List(_ context.Context) ([]userdom.User, error) {
	out := make([]userdom.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserAdmin) AssignRole(_ context.Context, actorID, targetID string, newRole roledom.Role) (userdom.User, error) {
	f.assignCalls++
	f.lastActor, f.lastTarget, f.lastRole = actorID, targetID, newRole
	if f.assignErr != nil {
		return userdom.User{}, f.assignErr
	}
	return f.users[targetID], nil
}

func (f *fakeUserAdmin) SetStatus(_ context.Context, targetID, status string) (userdom.User, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return userdom.User{}, f.statusErr
	}
	return f.users[targetID], nil
}

func (f *fakeUserAdmin) ResyncPermissions(_ context.Context, targetID string) (userdom.User, error) {
	u, ok := f.users[targetID]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

func adminRequest(t *testing.T, method, path, body string, perms []string) *http.Request {
	t.Helper()
	actor, err := userdom.New("uid-actor", "actor@example.com", time.Now().UTC(),
		userdom.WithRole(roledom.SuperAdmin, perms))
	require.NoError(t, err)

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	return r.WithContext(httpmw.ContextWithUser(r.Context(), actor))
}

func newFakeUserAdmin() *fakeUserAdmin {
	target, _ := userdom.New("uid-target", "target@example.com", time.Now().UTC())
	return &fakeUserAdmin{users: map[string]userdom.User{"uid-target": target}}
}

func TestUserHandlerAssignRole(t *testing.T) {
	fake := newFakeUserAdmin()
	h := NewUserHandler(fake)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(t, http.MethodPut, "/api/users/uid-target/role",
		`{"role":"organizer"}`, []string{"users:assign_roles", "users:manage"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fake.assignCalls)
	assert.Equal(t, "uid-actor", fake.lastActor)
	assert.Equal(t, "uid-target", fake.lastTarget)
	assert.Equal(t, roledom.Organizer, fake.lastRole)
}

func TestUserHandlerAssignRoleWithoutPermission(t *testing.T) {
	fake := newFakeUserAdmin()
	h := NewUserHandler(fake)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(t, http.MethodPut, "/api/users/uid-target/role",
		`{"role":"organizer"}`, []string{"users:view"}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, fake.assignCalls)
}

func TestUserHandlerAssignRoleInvalid(t *testing.T) {
	fake := newFakeUserAdmin()
	fake.assignErr = userdom.ErrInvalidRole
	h := NewUserHandler(fake)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(t, http.MethodPut, "/api/users/uid-target/role",
		`{"role":"owner"}`, []string{"users:assign_roles"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandlerSetStatusRequiresManage(t *testing.T) {
	fake := newFakeUserAdmin()
	h := NewUserHandler(fake)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(t, http.MethodPut, "/api/users/uid-target/status",
		`{"status":"suspended"}`, []string{"users:view"}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, fake.statusCalls)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(t, http.MethodPut, "/api/users/uid-target/status",
		`{"status":"suspended"}`, []string{"users:manage"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fake.statusCalls)
}

func TestUserHandlerGetNotFound(t *testing.T) {
	h := NewUserHandler(newFakeUserAdmin())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(t, http.MethodGet, "/api/users/uid-missing", "", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandlerListEmptyBody(t *testing.T) {
	h := NewUserHandler(&fakeUserAdmin{users: map[string]userdom.User{}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(t, http.MethodGet, "/api/users", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	// Empty list must encode as [], not null.
	assert.Equal(t, "[]\n", rec.Body.String())
}
