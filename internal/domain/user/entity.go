// internal/domain/user/entity.go
package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	roledom "leaguehub/internal/domain/role"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Account status values.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusPending   = "pending"
)

// User is the domain entity for a league user account.
//
// Permissions is a materialized snapshot of the role's catalog set,
// taken at role-assignment time. Editing the catalog does not change
// existing accounts until an explicit re-sync (see usecase.ResyncPermissions).
type User struct {
	ID             string       `json:"id" firestore:"id"` // identity-provider UID
	Email          string       `json:"email" firestore:"email"`
	FirstName      string       `json:"firstName,omitempty" firestore:"firstName"`
	LastName       string       `json:"lastName,omitempty" firestore:"lastName"`
	Phone          string       `json:"phone,omitempty" firestore:"phone,omitempty"`
	FavoriteTeamID string       `json:"favoriteTeamId,omitempty" firestore:"favoriteTeamId,omitempty"`
	Role           roledom.Role `json:"role" firestore:"role"`
	Permissions    []string     `json:"permissions" firestore:"permissions"`
	Status         string       `json:"status" firestore:"status"`
	AssignedBy     *string      `json:"assignedBy,omitempty" firestore:"assignedBy,omitempty"`

	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

var (
	ErrInvalidID        = errors.New("user: invalid id")
	ErrInvalidEmail     = errors.New("user: invalid email")
	ErrInvalidRole      = errors.New("user: invalid role")
	ErrInvalidStatus    = errors.New("user: invalid status")
	ErrInvalidCreatedAt = errors.New("user: invalid createdAt")
	ErrNotFound         = errors.New("user: not found")
	ErrConflict         = errors.New("user: conflict")
)

// New constructs a User with validation. Role defaults to member with an
// empty permission set unless WithRole is supplied; status defaults to active.
func New(id, email string, createdAt time.Time, opts ...func(*User)) (User, error) {
	u := User{
		ID:        strings.TrimSpace(id),
		Email:     strings.TrimSpace(email),
		Role:      roledom.Member,
		Status:    StatusActive,
		CreatedAt: createdAt,
	}
	for _, opt := range opts {
		opt(&u)
	}
	u.Permissions = dedup(u.Permissions)
	if err := u.validate(); err != nil {
		return User{}, err
	}
	return u, nil
}

/* ---------- Option helpers to set optional fields ---------- */

func WithName(first, last string) func(*User) {
	return func(u *User) {
		u.FirstName, u.LastName = strings.TrimSpace(first), strings.TrimSpace(last)
	}
}

func WithPhone(phone string) func(*User) {
	return func(u *User) { u.Phone = strings.TrimSpace(phone) }
}

func WithFavoriteTeam(teamID string) func(*User) {
	return func(u *User) { u.FavoriteTeamID = strings.TrimSpace(teamID) }
}

// WithRole sets the role together with its materialized permission set.
func WithRole(r roledom.Role, permissions []string) func(*User) {
	return func(u *User) {
		u.Role = r
		u.Permissions = append([]string(nil), permissions...)
	}
}

func WithStatus(status string) func(*User) {
	return func(u *User) { u.Status = strings.TrimSpace(status) }
}

func WithAssignedBy(assignerID string) func(*User) {
	return func(u *User) {
		if id := strings.TrimSpace(assignerID); id != "" {
			u.AssignedBy = &id
		}
	}
}

/* ------------------------------ Mutators ------------------------------ */

// AssignRole replaces the role and rewrites the materialized permission
// snapshot, recording which account performed the assignment.
func (u *User) AssignRole(r roledom.Role, permissions []string, assignerID string, now time.Time) error {
	if !r.Valid() {
		return ErrInvalidRole
	}
	u.Role = r
	u.Permissions = dedup(permissions)
	if id := strings.TrimSpace(assignerID); id != "" {
		u.AssignedBy = &id
	}
	u.touch(now)
	return nil
}

// SetStatus transitions the account status (active/suspended/pending).
func (u *User) SetStatus(status string, now time.Time) error {
	s := strings.TrimSpace(status)
	if !validStatus(s) {
		return ErrInvalidStatus
	}
	u.Status = s
	u.touch(now)
	return nil
}

// HasPermission checks the materialized set, including the wildcard rule.
func (u User) HasPermission(p roledom.Permission) bool {
	return roledom.HasPermission(u.Permissions, p)
}

// FullName returns "first last", skipping empty parts.
func (u User) FullName() string {
	fn := strings.TrimSpace(u.FirstName)
	ln := strings.TrimSpace(u.LastName)
	switch {
	case fn != "" && ln != "":
		return fn + " " + ln
	case fn != "":
		return fn
	default:
		return ln
	}
}

/* --------------------- Validation and helpers --------------------- */

func (u User) validate() error {
	if u.ID == "" {
		return ErrInvalidID
	}
	if u.Email == "" || !emailRe.MatchString(u.Email) {
		return ErrInvalidEmail
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	if !validStatus(u.Status) {
		return ErrInvalidStatus
	}
	if u.CreatedAt.IsZero() {
		return ErrInvalidCreatedAt
	}
	return nil
}

func validStatus(s string) bool {
	switch s {
	case StatusActive, StatusSuspended, StatusPending:
		return true
	default:
		return false
	}
}

func (u *User) touch(now time.Time) {
	t := now
	u.UpdatedAt = &t
}

func dedup(xs []string) []string {
	seen := make(map[string]struct{}, len(xs))
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x == "" {
			continue
		}
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// Patch represents partial updates for User.
// nil fields are ignored by repositories.
type Patch struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	FavoriteTeamID *string
	Role           *roledom.Role
	Permissions    *[]string
	Status         *string
	AssignedBy     *string
	UpdatedAt      *time.Time
}

// Apply writes the non-nil patch fields onto u.
func (p Patch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.FavoriteTeamID != nil {
		u.FavoriteTeamID = *p.FavoriteTeamID
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Permissions != nil {
		u.Permissions = dedup(*p.Permissions)
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.AssignedBy != nil {
		u.AssignedBy = p.AssignedBy
	}
	if p.UpdatedAt != nil {
		u.UpdatedAt = p.UpdatedAt
	}
}

// DDL reference (for schema alignment with the Postgres adapter)
const UsersTableDDL = `
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email VARCHAR(255) NOT NULL UNIQUE,
  first_name VARCHAR(100),
  last_name VARCHAR(100),
  phone VARCHAR(50),
  favorite_team_id TEXT,
  role TEXT NOT NULL,
  permissions TEXT[] NOT NULL,
  status TEXT NOT NULL,
  assigned_by TEXT,

  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ
);
`
