package readstore

import (
	"context"

	"library-lending/internal/infra"
	"library-lending/internal/infra/db"
	"library-lending/internal/pkg/pgconv"
	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userViewColumns = `
id, email, name, phone_number, role, is_blocked, registered_at`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userViewColumns+` FROM users WHERE id = $1`, id)
	view, err := scanUserView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userViewColumns+` FROM users WHERE email = $1`, email)
	view, err := scanUserView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userViewColumns+` FROM users ORDER BY registered_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.UserView
	for rows.Next() {
		view, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return result, nil
}

func scanUserView(row rowScanner) (*queries.UserView, error) {
	var (
		view         queries.UserView
		registeredAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Email, &view.Name, &view.PhoneNumber,
		&view.Role, &view.IsBlocked, &registeredAt,
	)
	if err != nil {
		return nil, err
	}
	view.RegisteredAt = pgconv.TimeFromPgtype(registeredAt)
	return &view, nil
}
