package repository

import (
	"context"

	"library-lending/internal/domain/lending"
	"library-lending/internal/infra"
	"library-lending/internal/infra/db"
	"library-lending/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RecordRepository struct{}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

// The partial unique index on (user_id, book_id) WHERE status = 'borrowed'
// turns a duplicate active borrow into a 23505, surfaced as DUPLICATE_KEY.
const createRecordSQL = `
INSERT INTO borrowing_records
    (user_id, book_id, book_code, borrow_date, due_date, status, borrow_evidence)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *RecordRepository) Create(ctx context.Context, dbtx db.DBTX, rec *lending.BorrowingRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createRecordSQL,
		rec.UserID(), rec.BookID(), rec.BookCode(),
		pgconv.TimeToPgtype(rec.BorrowDate()),
		pgconv.TimeToPgtype(rec.DueDate()),
		rec.Status().String(),
		rec.BorrowEvidence().Photos(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create borrowing record", err)
	}
	return id, nil
}

const findRecordForUpdateSQL = `
SELECT id, user_id, book_id, book_code, borrow_date, due_date,
       actual_return_date, status, borrow_evidence, return_evidence,
       created_at, updated_at
FROM borrowing_records
WHERE id = $1
FOR UPDATE`

func (r *RecordRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*lending.BorrowingRecord, error) {
	var (
		recID, userID                  uuid.UUID
		bookID                         pgtype.UUID
		bookCode, status               string
		borrowDate, dueDate            pgtype.Timestamptz
		actualReturnDate               pgtype.Timestamptz
		borrowEvidence, returnEvidence []string
		createdAt, updatedAt           pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, findRecordForUpdateSQL, id).Scan(
		&recID, &userID, &bookID, &bookCode,
		&borrowDate, &dueDate, &actualReturnDate,
		&status, &borrowEvidence, &returnEvidence,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("borrowing record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock borrowing record", err)
	}

	st, err := lending.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt record status", err)
	}

	// book_id goes NULL when the book row was removed after return
	var bookUUID uuid.UUID
	if p := pgconv.UUIDPtrFromPgtype(bookID); p != nil {
		bookUUID = *p
	}

	return lending.ReconstructBorrowingRecord(
		recID, userID, bookUUID, bookCode,
		pgconv.TimeFromPgtype(borrowDate),
		pgconv.TimeFromPgtype(dueDate),
		pgconv.TimePtrFromPgtype(actualReturnDate),
		st,
		lending.ReconstructEvidence(borrowEvidence),
		lending.ReconstructEvidence(returnEvidence),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const markReturnedSQL = `
UPDATE borrowing_records
SET status             = $2,
    actual_return_date = $3,
    return_evidence    = $4,
    updated_at         = now()
WHERE id = $1`

func (r *RecordRepository) MarkReturned(ctx context.Context, dbtx db.DBTX, rec *lending.BorrowingRecord) error {
	tag, err := dbtx.Exec(ctx, markReturnedSQL,
		rec.ID(),
		rec.Status().String(),
		pgconv.TimePtrToPgtype(rec.ActualReturnDate()),
		rec.ReturnEvidence().Photos(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark record returned", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("borrowing record not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RecordRepository) CountActiveByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (int, error) {
	var count int
	err := dbtx.QueryRow(ctx,
		`SELECT COUNT(*) FROM borrowing_records WHERE user_id = $1 AND status = 'borrowed'`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active borrows", err)
	}
	return count, nil
}

func (r *RecordRepository) ExistsActiveByBook(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM borrowing_records WHERE book_id = $1 AND status = 'borrowed')`,
		bookID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active borrows for book", err)
	}
	return exists, nil
}
