package shared

import (
	"context"

	"library-lending/internal/domain/book"
	"library-lending/internal/domain/lending"
	"library-lending/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Books() BookRepository
	Users() UserRepository
	Records() RecordRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal snapshot lookups the write side needs for
// validation, separate from the read-model queries.
type CommandReads interface {
	BookByID(ctx context.Context, id uuid.UUID) (*BookSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type BookRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *book.Book) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, params UpdateBookParams) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	// ReserveCopy atomically decrements available_copies when positive.
	// This compare-and-decrement is the serialization point for capacity.
	ReserveCopy(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID) (*ReservedCopy, error)
	// ReleaseCopy increments available_copies, clamped to total_copies.
	// Reports false when the book row no longer exists.
	ReleaseCopy(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID) (bool, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, dbtx db.DBTX, u UpsertUserParams) (uuid.UUID, error)
	SetBlocked(ctx context.Context, dbtx db.DBTX, id uuid.UUID, blocked bool) error
	// LockForBorrow takes a row lock on the user, serializing concurrent
	// borrow attempts by the same user so the limit check cannot race.
	LockForBorrow(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*UserSnapshot, error)
}

type RecordRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rec *lending.BorrowingRecord) (uuid.UUID, error)
	// FindForUpdate locks the record row for the duration of the transaction.
	FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*lending.BorrowingRecord, error)
	MarkReturned(ctx context.Context, dbtx db.DBTX, rec *lending.BorrowingRecord) error
	CountActiveByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (int, error)
	ExistsActiveByBook(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID) (bool, error)
}
