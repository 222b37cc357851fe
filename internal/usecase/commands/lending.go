package commands

import (
	"context"
	"errors"
	"log/slog"

	"library-lending/internal/domain/lending"
	"library-lending/internal/infra"
	"library-lending/internal/pkg/clock"
	"library-lending/internal/pkg/config"
	"library-lending/internal/pkg/errs"
	"library-lending/internal/usecase/queries"
	"library-lending/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrBookNotFound            = errs.New("book not found")
	ErrRecordNotFound          = errs.New("borrowing record not found")
	ErrUserBlocked             = errs.New("user is blocked from borrowing")
	ErrBookUnavailable         = errs.New("book is currently unavailable")
	ErrBorrowLimitReached      = errs.New("borrow limit reached")
	ErrAlreadyBorrowed         = errs.New("book already borrowed by user")
	ErrAlreadyReturned         = errs.New("record already returned")
	ErrNotRecordOwner          = errs.New("record belongs to another user")
	ErrEvidenceValidation      = errs.New("evidence validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ListingCache invalidates cached public book listings after a write that
// changes availability. Implementations are best-effort; failures must not
// surface into the operation result.
type ListingCache interface {
	InvalidateBookListings(ctx context.Context)
}

type LendingCommands interface {
	// Borrow reserves one copy of a book for a user and opens a ledger
	// record, all inside a single transaction.
	Borrow(ctx context.Context, bookID, userID uuid.UUID, evidencePhotos []string) (*queries.RecordView, error)
	// Return closes a ledger record and releases the copy back to the
	// catalog.
	Return(ctx context.Context, recordID, userID uuid.UUID, evidencePhotos []string) (*queries.RecordView, error)
}

type lendingUseCaseImpl struct {
	uow     shared.UnitOfWork
	records queries.LendingReadStore
	cache   ListingCache
	clock   clock.Clock
	policy  config.LendingConfig
}

func NewLendingCommands(
	uow shared.UnitOfWork,
	records queries.LendingReadStore,
	cache ListingCache,
	clk clock.Clock,
	cfg config.Config,
) LendingCommands {
	return &lendingUseCaseImpl{
		uow:     uow,
		records: records,
		cache:   cache,
		clock:   clk,
		policy:  cfg.Lending,
	}
}

// Borrow runs the whole reservation inside one transaction so that every
// failure path after the copy decrement rolls the counter back atomically.
// Ordering matters:
//  1. user row lock (serializes same-user borrows, makes the limit check safe)
//  2. compare-and-decrement on available_copies (the capacity serialization point)
//  3. limit re-check after the copy is secured
//  4. record insert, with the partial unique index rejecting a duplicate pair
func (uc *lendingUseCaseImpl) Borrow(
	ctx context.Context,
	bookID, userID uuid.UUID,
	evidencePhotos []string,
) (*queries.RecordView, error) {
	evidence, err := lending.NewEvidence(evidencePhotos)
	if err != nil {
		return nil, errs.Mark(err, ErrEvidenceValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		guard, derr := tx.Users().LockForBorrow(ctx, tx.DB(), userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if guard.IsBlocked {
			return ErrUserBlocked
		}

		reserved, derr := tx.Books().ReserveCopy(ctx, tx.DB(), bookID)
		if derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindNotFound):
				return ErrBookNotFound
			case infra.IsKind(derr, infra.KindConflict):
				return ErrBookUnavailable
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		// Re-validated after securing the copy; aborting here rolls the
		// decrement back in the same transaction.
		count, derr := tx.Records().CountActiveByUser(ctx, tx.DB(), userID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if count >= uc.policy.MaxActiveBorrows {
			return ErrBorrowLimitReached
		}

		rec := lending.NewBorrowingRecord(
			userID, bookID, reserved.BookCode,
			evidence, uc.clock.Now(), uc.policy.LoanPeriodDays,
		)
		id, derr := tx.Records().Create(ctx, tx.DB(), rec)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrAlreadyBorrowed
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateListings(ctx)

	return uc.readBack(ctx, createdID)
}

func (uc *lendingUseCaseImpl) Return(
	ctx context.Context,
	recordID, userID uuid.UUID,
	evidencePhotos []string,
) (*queries.RecordView, error) {
	evidence, err := lending.NewEvidence(evidencePhotos)
	if err != nil {
		return nil, errs.Mark(err, ErrEvidenceValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, derr := tx.Records().FindForUpdate(ctx, tx.DB(), recordID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRecordNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = rec.MarkReturned(userID, evidence, uc.clock.Now()); derr != nil {
			switch {
			case errors.Is(derr, lending.ErrNotOwner):
				return ErrNotRecordOwner
			case errors.Is(derr, lending.ErrAlreadyReturned):
				return ErrAlreadyReturned
			}
			return derr
		}

		if derr = tx.Records().MarkReturned(ctx, tx.DB(), rec); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		// A missing book row must not block the return: the patron's
		// action is recorded and the anomaly logged instead.
		released, derr := tx.Books().ReleaseCopy(ctx, tx.DB(), rec.BookID())
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if !released {
			slog.Warn("integrity: book missing while returning copy",
				"record_id", rec.ID().String(),
				"book_id", rec.BookID().String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateListings(ctx)

	return uc.readBack(ctx, recordID)
}

// Read-after-write: hand the caller the joined view from the read store.
func (uc *lendingUseCaseImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.RecordView, error) {
	view, err := uc.records.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *lendingUseCaseImpl) invalidateListings(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.InvalidateBookListings(ctx)
	}
}
