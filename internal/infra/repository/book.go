package repository

import (
	"context"

	"library-lending/internal/domain/book"
	"library-lending/internal/infra"
	"library-lending/internal/infra/db"
	"library-lending/internal/pkg/pgconv"
	"library-lending/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookRepository struct{}

func NewBookRepository() *BookRepository {
	return &BookRepository{}
}

const createBookSQL = `
INSERT INTO books (code, title, author, genre, about, image, total_copies, available_copies)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *BookRepository) Create(ctx context.Context, dbtx db.DBTX, b *book.Book) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookSQL,
		b.Code().Value(), b.Title(), b.Author(), b.Genre(), b.About(), b.Image(),
		b.TotalCopies(), b.AvailableCopies(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create book", err)
	}
	return id, nil
}

const updateBookSQL = `
UPDATE books
SET code             = COALESCE($2, code),
    title            = COALESCE($3, title),
    author           = COALESCE($4, author),
    genre            = COALESCE($5, genre),
    about            = COALESCE($6, about),
    image            = COALESCE($7, image),
    total_copies     = $8,
    available_copies = $9,
    updated_at       = now()
WHERE id = $1`

func (r *BookRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, params shared.UpdateBookParams) error {
	tag, err := dbtx.Exec(ctx, updateBookSQL,
		id,
		pgconv.StringPtrToPgtype(params.Code),
		pgconv.StringPtrToPgtype(params.Title),
		pgconv.StringPtrToPgtype(params.Author),
		pgconv.StringPtrToPgtype(params.Genre),
		pgconv.StringPtrToPgtype(params.About),
		pgconv.StringPtrToPgtype(params.Image),
		params.TotalCopies,
		params.AvailableCopies,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

// The WHERE guard makes the decrement a compare-and-swap: under READ
// COMMITTED concurrent transactions re-evaluate the predicate after the
// row lock is released, so the counter can never go below zero.
const reserveCopySQL = `
UPDATE books
SET available_copies = available_copies - 1,
    updated_at       = now()
WHERE id = $1 AND available_copies > 0
RETURNING id, code, available_copies`

func (r *BookRepository) ReserveCopy(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID) (*shared.ReservedCopy, error) {
	var reserved shared.ReservedCopy
	err := dbtx.QueryRow(ctx, reserveCopySQL, bookID).
		Scan(&reserved.BookID, &reserved.BookCode, &reserved.AvailableCopies)
	if err == nil {
		return &reserved, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to reserve book copy", err)
	}

	// Zero rows means either no such book or no free copy.
	var exists bool
	if err := dbtx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, bookID).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check book existence", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("no available copies", nil, infra.KindConflict)
}

// LEAST clamps against drift: a copy returned after the admin lowered
// total_copies must not push the counter past the new total.
const releaseCopySQL = `
UPDATE books
SET available_copies = LEAST(available_copies + 1, total_copies),
    updated_at       = now()
WHERE id = $1`

func (r *BookRepository) ReleaseCopy(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, releaseCopySQL, bookID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release book copy", err)
	}
	return tag.RowsAffected() > 0, nil
}
