package readstore

import (
	"context"
	"time"

	"library-lending/internal/infra"
	"library-lending/internal/infra/db"
	"library-lending/internal/pkg/pgconv"
	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LendingReadStore struct {
	db db.DBTX
}

func NewLendingReadStore(dbtx db.DBTX) *LendingReadStore {
	return &LendingReadStore{db: dbtx}
}

const recordViewSQL = `
SELECT r.id, r.user_id, r.book_id, r.book_code,
       COALESCE(b.title, ''), COALESCE(b.author, ''), COALESCE(b.image, ''),
       r.borrow_date, r.due_date, r.actual_return_date, r.status,
       r.created_at, r.updated_at
FROM borrowing_records r
LEFT JOIN books b ON b.id = r.book_id`

func (r *LendingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RecordView, error) {
	row := r.db.QueryRow(ctx, recordViewSQL+` WHERE r.id = $1`, id)
	view, err := scanRecordView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("borrowing record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find borrowing record", err)
	}
	return view, nil
}

func (r *LendingReadStore) FindActivePair(ctx context.Context, bookID, userID uuid.UUID) (*queries.RecordView, error) {
	row := r.db.QueryRow(ctx,
		recordViewSQL+` WHERE r.book_id = $1 AND r.user_id = $2 AND r.status = 'borrowed'`,
		bookID, userID)
	view, err := scanRecordView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active borrow", err)
	}
	return view, nil
}

func (r *LendingReadStore) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM borrowing_records WHERE user_id = $1 AND status = 'borrowed'`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active borrows", err)
	}
	return count, nil
}

func (r *LendingReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*queries.RecordView, error) {
	return r.queryRecords(ctx,
		recordViewSQL+` WHERE r.user_id = $1 AND r.status = 'borrowed' ORDER BY r.due_date ASC`,
		userID)
}

func (r *LendingReadStore) FindHistoryByUser(ctx context.Context, userID uuid.UUID) ([]*queries.RecordView, error) {
	return r.queryRecords(ctx,
		recordViewSQL+` WHERE r.user_id = $1 AND r.status = 'returned' ORDER BY r.actual_return_date DESC`,
		userID)
}

func (r *LendingReadStore) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*queries.RecordView, error) {
	return r.queryRecords(ctx,
		recordViewSQL+` WHERE r.user_id = $1 ORDER BY r.borrow_date DESC`,
		userID)
}

const overdueViewSQL = `
SELECT r.id, r.user_id, r.book_id, r.book_code,
       COALESCE(b.title, ''), COALESCE(b.author, ''), COALESCE(b.image, ''),
       r.borrow_date, r.due_date, r.actual_return_date, r.status,
       r.created_at, r.updated_at,
       u.name, u.email, u.phone_number, u.is_blocked
FROM borrowing_records r
LEFT JOIN books b ON b.id = r.book_id
JOIN users u ON u.id = r.user_id
WHERE r.status = 'borrowed' AND r.due_date < $1
ORDER BY r.due_date ASC`

func (r *LendingReadStore) FindOverdue(ctx context.Context, now time.Time) ([]*queries.OverdueRecordView, error) {
	rows, err := r.db.Query(ctx, overdueViewSQL, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue records", err)
	}
	defer rows.Close()

	var result []*queries.OverdueRecordView
	for rows.Next() {
		var (
			view                 queries.OverdueRecordView
			borrowDate, dueDate  pgtype.Timestamptz
			actualReturnDate     pgtype.Timestamptz
			createdAt, updatedAt pgtype.Timestamptz
		)
		err := rows.Scan(
			&view.ID, &view.UserID, &view.BookID, &view.BookCode,
			&view.BookTitle, &view.BookAuthor, &view.BookImage,
			&borrowDate, &dueDate, &actualReturnDate, &view.Status,
			&createdAt, &updatedAt,
			&view.UserName, &view.UserEmail, &view.UserPhone, &view.UserBlocked,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan overdue record", err)
		}
		view.BorrowDate = pgconv.TimeFromPgtype(borrowDate)
		view.DueDate = pgconv.TimeFromPgtype(dueDate)
		view.ActualReturnDate = pgconv.TimePtrFromPgtype(actualReturnDate)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overdue rows", err)
	}
	return result, nil
}

func (r *LendingReadStore) queryRecords(ctx context.Context, sql string, args ...any) ([]*queries.RecordView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list borrowing records", err)
	}
	defer rows.Close()

	var result []*queries.RecordView
	for rows.Next() {
		view, err := scanRecordView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan borrowing record", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read record rows", err)
	}
	return result, nil
}

func scanRecordView(row rowScanner) (*queries.RecordView, error) {
	var (
		view                 queries.RecordView
		bookID               pgtype.UUID
		borrowDate, dueDate  pgtype.Timestamptz
		actualReturnDate     pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.UserID, &bookID, &view.BookCode,
		&view.BookTitle, &view.BookAuthor, &view.BookImage,
		&borrowDate, &dueDate, &actualReturnDate, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	// book_id goes NULL when the book row was removed after return
	if p := pgconv.UUIDPtrFromPgtype(bookID); p != nil {
		view.BookID = *p
	}
	view.BorrowDate = pgconv.TimeFromPgtype(borrowDate)
	view.DueDate = pgconv.TimeFromPgtype(dueDate)
	view.ActualReturnDate = pgconv.TimePtrFromPgtype(actualReturnDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

// BorrowGateReadStore serves the two point lookups the advisory status
// projection needs.
type BorrowGateReadStore struct {
	db db.DBTX
}

func NewBorrowGateReadStore(dbtx db.DBTX) *BorrowGateReadStore {
	return &BorrowGateReadStore{db: dbtx}
}

func (r *BorrowGateReadStore) UserBorrowGate(ctx context.Context, userID uuid.UUID) (*queries.UserBorrowGate, error) {
	var gate queries.UserBorrowGate
	err := r.db.QueryRow(ctx, `SELECT id, is_blocked FROM users WHERE id = $1`, userID).
		Scan(&gate.ID, &gate.IsBlocked)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user borrow gate", err)
	}
	return &gate, nil
}

func (r *BorrowGateReadStore) BookAvailability(ctx context.Context, bookID uuid.UUID) (int, error) {
	var available int
	err := r.db.QueryRow(ctx, `SELECT available_copies FROM books WHERE id = $1`, bookID).
		Scan(&available)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to load book availability", err)
	}
	return available, nil
}
