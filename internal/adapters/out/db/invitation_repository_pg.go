// internal/adapters/out/db/invitation_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	invdom "leaguehub/internal/domain/invitation"
	roledom "leaguehub/internal/domain/role"
)

// InvitationRepositoryPG is the PostgreSQL implementation of
// invdom.Repository. Schema: invdom.InvitationsTableDDL.
//
// Unlike the Firestore adapter, the partial unique index on pending email
// makes the one-pending-per-email invariant hold under concurrent creates:
// the loser of the race gets ErrDuplicatePending.
type InvitationRepositoryPG struct {
	DB *sql.DB
}

var _ invdom.Repository = (*InvitationRepositoryPG)(nil)

func NewInvitationRepositoryPG(db *sql.DB) *InvitationRepositoryPG {
	return &InvitationRepositoryPG{DB: db}
}

const invitationColumns = `
  id::text,
  email,
  role,
  invited_by,
  invited_by_name,
  status,
  expires_at,
  created_at
`

func (r *InvitationRepositoryPG) GetByID(ctx context.Context, id string) (invdom.Invitation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return invdom.Invitation{}, invdom.ErrNotFound
	}
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = $1`, id)
	return scanInvitation(row)
}

func (r *InvitationRepositoryPG) FindPendingByEmail(ctx context.Context, email string) (invdom.Invitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return invdom.Invitation{}, invdom.ErrNotFound
	}
	row := r.DB.QueryRowContext(ctx, `
SELECT `+invitationColumns+`
FROM invitations
WHERE email = $1 AND status = $2
ORDER BY created_at DESC
LIMIT 1`,
		email, string(invdom.StatusPending))
	return scanInvitation(row)
}

func (r *InvitationRepositoryPG) List(ctx context.Context) ([]invdom.Invitation, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []invdom.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *InvitationRepositoryPG) Create(ctx context.Context, inv invdom.Invitation) (invdom.Invitation, error) {
	if strings.TrimSpace(inv.ID) == "" {
		inv.ID = uuid.NewString()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, `
INSERT INTO invitations
  (id, email, role, invited_by, invited_by_name, status, expires_at, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		inv.ID, inv.Email, string(inv.Role), inv.InvitedBy, inv.InvitedByName,
		string(inv.Status), inv.ExpiresAt, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return invdom.Invitation{}, invdom.ErrDuplicatePending
		}
		return invdom.Invitation{}, err
	}
	return inv, nil
}

func (r *InvitationRepositoryPG) UpdateStatus(ctx context.Context, id string, s invdom.Status) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE invitations SET status = $2 WHERE id = $1`,
		strings.TrimSpace(id), string(s))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return invdom.ErrNotFound
	}
	return nil
}

func (r *InvitationRepositoryPG) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM invitations WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return invdom.ErrNotFound
	}
	return nil
}

func scanInvitation(row rowScanner) (invdom.Invitation, error) {
	var (
		inv       invdom.Invitation
		roleRaw   string
		statusRaw string
	)
	err := row.Scan(
		&inv.ID, &inv.Email, &roleRaw, &inv.InvitedBy, &inv.InvitedByName,
		&statusRaw, &inv.ExpiresAt, &inv.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return invdom.Invitation{}, invdom.ErrNotFound
	}
	if err != nil {
		return invdom.Invitation{}, err
	}
	inv.Role = roledom.Role(roleRaw)
	inv.Status = invdom.Status(statusRaw)
	return inv, nil
}
