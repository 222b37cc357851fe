package queries

import (
	"context"
	"time"

	"library-lending/internal/infra"
	"library-lending/internal/pkg/clock"
	"library-lending/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errs.New("user not found")
	ErrBookNotFound   = errs.New("book not found")
	ErrRecordNotFound = errs.New("borrowing record not found")
)

type LendingQueries interface {
	// Status computes the advisory borrow-status projection for a
	// (book, user) pair.
	Status(ctx context.Context, bookID, userID uuid.UUID) (*BorrowStatusView, error)
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*RecordView, error)
	ListHistoryByUser(ctx context.Context, userID uuid.UUID) ([]*RecordView, error)
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*RecordView, error)
	ListOverdue(ctx context.Context) ([]*OverdueRecordView, error)
}

type LendingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecordView, error)
	// FindActivePair returns the borrowed record for a (book, user) pair,
	// or nil when none exists.
	FindActivePair(ctx context.Context, bookID, userID uuid.UUID) (*RecordView, error)
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*RecordView, error)
	FindHistoryByUser(ctx context.Context, userID uuid.UUID) ([]*RecordView, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*RecordView, error)
	FindOverdue(ctx context.Context, now time.Time) ([]*OverdueRecordView, error)
}

type BorrowGateReadStore interface {
	UserBorrowGate(ctx context.Context, userID uuid.UUID) (*UserBorrowGate, error)
	BookAvailability(ctx context.Context, bookID uuid.UUID) (int, error)
}

// UserBorrowGate is the pair of flags the status projection needs from
// the identity store.
type UserBorrowGate struct {
	ID        uuid.UUID
	IsBlocked bool
}

type lendingQueriesImpl struct {
	store LendingReadStore
	gate  BorrowGateReadStore
	clock clock.Clock
	limit int
}

func NewLendingQueries(store LendingReadStore, gate BorrowGateReadStore, clk clock.Clock, maxActiveBorrows int) LendingQueries {
	return &lendingQueriesImpl{
		store: store,
		gate:  gate,
		clock: clk,
		limit: maxActiveBorrows,
	}
}

func (q *lendingQueriesImpl) Status(ctx context.Context, bookID, userID uuid.UUID) (*BorrowStatusView, error) {
	userGate, err := q.gate.UserBorrowGate(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to load user for borrow status")
	}

	if userGate.IsBlocked {
		return &BorrowStatusView{Status: BorrowStatusUserBlocked}, nil
	}

	active, err := q.store.FindActivePair(ctx, bookID, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to look up active borrow")
	}

	count, err := q.store.CountActiveByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count active borrows")
	}

	if active != nil {
		id := active.ID
		return &BorrowStatusView{
			Status:         BorrowStatusBorrowedByUser,
			ActiveRecordID: &id,
			BorrowCount:    count,
		}, nil
	}

	available, err := q.gate.BookAvailability(ctx, bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to load book availability")
	}

	status := BorrowStatusCanBorrow
	switch {
	case available <= 0:
		status = BorrowStatusUnavailable
	case count >= q.limit:
		status = BorrowStatusLimitReached
	}

	return &BorrowStatusView{Status: status, BorrowCount: count}, nil
}

func (q *lendingQueriesImpl) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := q.store.CountActiveByUser(ctx, userID)
	if err != nil {
		return 0, errs.Wrap(err, "failed to count active borrows")
	}
	return count, nil
}

func (q *lendingQueriesImpl) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*RecordView, error) {
	records, err := q.store.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active borrows")
	}
	return records, nil
}

func (q *lendingQueriesImpl) ListHistoryByUser(ctx context.Context, userID uuid.UUID) ([]*RecordView, error) {
	records, err := q.store.FindHistoryByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list borrow history")
	}
	return records, nil
}

func (q *lendingQueriesImpl) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*RecordView, error) {
	records, err := q.store.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user borrow records")
	}
	return records, nil
}

func (q *lendingQueriesImpl) ListOverdue(ctx context.Context) ([]*OverdueRecordView, error) {
	records, err := q.store.FindOverdue(ctx, q.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to list overdue records")
	}
	return records, nil
}
