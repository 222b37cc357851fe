package lending

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyReturned = errors.New("record is already returned")
	ErrNotOwner        = errors.New("record belongs to another user")
)

// BorrowingRecord links a user to one reserved copy of a book. It is
// created in status borrowed and transitions exactly once to returned,
// after which it is immutable.
type BorrowingRecord struct {
	id               uuid.UUID
	userID           uuid.UUID
	bookID           uuid.UUID
	bookCode         string // denormalized for display without a catalog join
	borrowDate       time.Time
	dueDate          time.Time
	actualReturnDate *time.Time
	status           Status
	borrowEvidence   Evidence
	returnEvidence   Evidence
	createdAt        time.Time
	updatedAt        time.Time
}

func NewBorrowingRecord(
	userID, bookID uuid.UUID,
	bookCode string,
	borrowEvidence Evidence,
	now time.Time,
	loanPeriodDays int,
) *BorrowingRecord {
	return &BorrowingRecord{
		id:             uuid.New(),
		userID:         userID,
		bookID:         bookID,
		bookCode:       bookCode,
		borrowDate:     now,
		dueDate:        now.AddDate(0, 0, loanPeriodDays),
		status:         StatusBorrowed,
		borrowEvidence: borrowEvidence,
	}
}

func ReconstructBorrowingRecord(
	id, userID, bookID uuid.UUID,
	bookCode string,
	borrowDate, dueDate time.Time,
	actualReturnDate *time.Time,
	status Status,
	borrowEvidence, returnEvidence Evidence,
	createdAt, updatedAt time.Time,
) *BorrowingRecord {
	return &BorrowingRecord{
		id:               id,
		userID:           userID,
		bookID:           bookID,
		bookCode:         bookCode,
		borrowDate:       borrowDate,
		dueDate:          dueDate,
		actualReturnDate: actualReturnDate,
		status:           status,
		borrowEvidence:   borrowEvidence,
		returnEvidence:   returnEvidence,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (r *BorrowingRecord) ID() uuid.UUID                { return r.id }
func (r *BorrowingRecord) UserID() uuid.UUID            { return r.userID }
func (r *BorrowingRecord) BookID() uuid.UUID            { return r.bookID }
func (r *BorrowingRecord) BookCode() string             { return r.bookCode }
func (r *BorrowingRecord) BorrowDate() time.Time        { return r.borrowDate }
func (r *BorrowingRecord) DueDate() time.Time           { return r.dueDate }
func (r *BorrowingRecord) ActualReturnDate() *time.Time { return r.actualReturnDate }
func (r *BorrowingRecord) Status() Status               { return r.status }
func (r *BorrowingRecord) BorrowEvidence() Evidence     { return r.borrowEvidence }
func (r *BorrowingRecord) ReturnEvidence() Evidence     { return r.returnEvidence }
func (r *BorrowingRecord) CreatedAt() time.Time         { return r.createdAt }
func (r *BorrowingRecord) UpdatedAt() time.Time         { return r.updatedAt }

func (r *BorrowingRecord) IsActive() bool {
	return r.status == StatusBorrowed
}

func (r *BorrowingRecord) IsOverdue(now time.Time) bool {
	return r.status == StatusBorrowed && r.dueDate.Before(now)
}

// MarkReturned performs the single borrowed -> returned transition.
// actorID must be the borrowing user; a second call fails.
func (r *BorrowingRecord) MarkReturned(actorID uuid.UUID, evidence Evidence, now time.Time) error {
	if r.userID != actorID {
		return ErrNotOwner
	}
	if r.status == StatusReturned {
		return ErrAlreadyReturned
	}
	r.status = StatusReturned
	r.actualReturnDate = &now
	r.returnEvidence = evidence
	return nil
}
