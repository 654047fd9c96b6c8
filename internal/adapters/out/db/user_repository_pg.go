// internal/adapters/out/db/user_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	roledom "leaguehub/internal/domain/role"
	userdom "leaguehub/internal/domain/user"
)

// UserRepositoryPG is the PostgreSQL implementation of userdom.Repository.
// Schema: userdom.UsersTableDDL.
type UserRepositoryPG struct {
	DB *sql.DB
}

var _ userdom.Repository = (*UserRepositoryPG)(nil)

func NewUserRepositoryPG(db *sql.DB) *UserRepositoryPG {
	return &UserRepositoryPG{DB: db}
}

const userColumns = `
  id,
  email,
  COALESCE(first_name, ''),
  COALESCE(last_name, ''),
  COALESCE(phone, ''),
  COALESCE(favorite_team_id, ''),
  role,
  permissions,
  status,
  assigned_by,
  created_at,
  updated_at
`

func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (userdom.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return userdom.User{}, userdom.ErrNotFound
	}
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (userdom.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return userdom.User{}, userdom.ErrNotFound
	}
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepositoryPG) List(ctx context.Context) ([]userdom.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []userdom.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepositoryPG) Create(ctx context.Context, u userdom.User) (userdom.User, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, `
INSERT INTO users
  (id, email, first_name, last_name, phone, favorite_team_id,
   role, permissions, status, assigned_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		u.ID, u.Email, u.FirstName, u.LastName, u.Phone, u.FavoriteTeamID,
		string(u.Role), pq.Array(u.Permissions), u.Status, u.AssignedBy,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return userdom.User{}, userdom.ErrConflict
		}
		return userdom.User{}, err
	}
	return u, nil
}

func (r *UserRepositoryPG) Update(ctx context.Context, id string, patch userdom.Patch) (userdom.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return userdom.User{}, err
	}

	patch.Apply(&u)
	if u.UpdatedAt == nil {
		now := time.Now().UTC()
		u.UpdatedAt = &now
	}

	res, err := r.DB.ExecContext(ctx, `
UPDATE users SET
  email = $2, first_name = $3, last_name = $4, phone = $5,
  favorite_team_id = $6, role = $7, permissions = $8, status = $9,
  assigned_by = $10, updated_at = $11
WHERE id = $1`,
		u.ID, u.Email, u.FirstName, u.LastName, u.Phone,
		u.FavoriteTeamID, string(u.Role), pq.Array(u.Permissions), u.Status,
		u.AssignedBy, u.UpdatedAt,
	)
	if err != nil {
		return userdom.User{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (userdom.User, error) {
	var (
		u          userdom.User
		roleRaw    string
		perms      pq.StringArray
		assignedBy sql.NullString
		updatedAt  sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.FavoriteTeamID,
		&roleRaw, &perms, &u.Status, &assignedBy, &u.CreatedAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return userdom.User{}, userdom.ErrNotFound
	}
	if err != nil {
		return userdom.User{}, err
	}

	// Unknown role strings are preserved as-is; the evaluator treats them
	// as zero-privilege rather than failing the read.
	u.Role = roledom.Role(roleRaw)
	u.Permissions = []string(perms)
	if assignedBy.Valid {
		v := assignedBy.String
		u.AssignedBy = &v
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		u.UpdatedAt = &t
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
