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

type BookReadStore struct {
	db db.DBTX
}

func NewBookReadStore(dbtx db.DBTX) *BookReadStore {
	return &BookReadStore{db: dbtx}
}

const bookViewColumns = `
id, code, title, author, genre, about, image,
total_copies, available_copies, created_at, updated_at`

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookViewColumns+` FROM books WHERE id = $1`, id)
	view, err := scanBookView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}
	return view, nil
}

func (r *BookReadStore) FindAvailable(ctx context.Context, limit int32) ([]*queries.BookListItem, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, code, title, author, image, available_copies
FROM books
WHERE available_copies > 0
ORDER BY created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available books", err)
	}
	defer rows.Close()

	var result []*queries.BookListItem
	for rows.Next() {
		item := &queries.BookListItem{}
		if err := rows.Scan(&item.ID, &item.Code, &item.Title, &item.Author, &item.Image, &item.AvailableCopies); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book list item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read book list rows", err)
	}
	return result, nil
}

func (r *BookReadStore) FindAll(ctx context.Context) ([]*queries.BookView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookViewColumns+` FROM books ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	var result []*queries.BookView
	for rows.Next() {
		view, err := scanBookView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read book rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookView(row rowScanner) (*queries.BookView, error) {
	var (
		view                 queries.BookView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Code, &view.Title, &view.Author, &view.Genre,
		&view.About, &view.Image, &view.TotalCopies, &view.AvailableCopies,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
