package repository

import (
	"context"

	"library-lending/internal/infra"
	"library-lending/internal/infra/db"
	"library-lending/internal/pkg/pgconv"
	"library-lending/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Email is the identity key from the sign-in provider, so registration
// and profile refresh share one statement.
const upsertUserSQL = `
INSERT INTO users (email, name, phone_number, photo, role, is_blocked, registered_at)
VALUES ($1, $2, $3, $4, 'user', FALSE, $5)
ON CONFLICT (email) DO UPDATE
SET name         = EXCLUDED.name,
    phone_number = EXCLUDED.phone_number,
    photo        = EXCLUDED.photo,
    updated_at   = now()
RETURNING id`

func (r *UserRepository) Upsert(ctx context.Context, dbtx db.DBTX, u shared.UpsertUserParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, upsertUserSQL,
		u.Email, u.Name, u.Phone, u.Photo, pgconv.TimeToPgtype(u.RegisteredAt),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert user", err)
	}
	return id, nil
}

func (r *UserRepository) SetBlocked(ctx context.Context, dbtx db.DBTX, id uuid.UUID, blocked bool) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE users SET is_blocked = $2, updated_at = now() WHERE id = $1`,
		id, blocked,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set user blocked flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

const lockUserSQL = `
SELECT id, email, name, role, is_blocked
FROM users
WHERE id = $1
FOR UPDATE`

func (r *UserRepository) LockForBorrow(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := dbtx.QueryRow(ctx, lockUserSQL, id).
		Scan(&snap.ID, &snap.Email, &snap.Name, &snap.Role, &snap.IsBlocked)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user row", err)
	}
	return &snap, nil
}
