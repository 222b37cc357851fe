//go:build unit || e2e

package builder

import (
	"time"

	domlending "library-lending/internal/domain/lending"
	reqdto "library-lending/internal/handler/dto/request"
	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
)

// EvidencePhotos returns the customary four data-URI photos.
func EvidencePhotos() []string {
	return []string{
		"data:image/jpeg;base64,AAAA",
		"data:image/jpeg;base64,BBBB",
		"data:image/jpeg;base64,CCCC",
		"data:image/jpeg;base64,DDDD",
	}
}

type RecordBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	BookCode   string
	BookTitle  string
	BorrowDate time.Time
	LoanDays   int
	Status     string
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		BookID:     uuid.New(),
		BookCode:   "BK-0001",
		BookTitle:  "The Go Programming Language",
		BorrowDate: time.Now(),
		LoanDays:   15,
		Status:     "borrowed",
	}
}

func (b *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(b)
	return b
}

func (b *RecordBuilder) BuildDomain() (*domlending.BorrowingRecord, error) {
	evidence, err := domlending.NewEvidence(EvidencePhotos())
	if err != nil {
		return nil, err
	}
	return domlending.NewBorrowingRecord(b.UserID, b.BookID, b.BookCode, evidence, b.BorrowDate, b.LoanDays), nil
}

func (b *RecordBuilder) BuildView() *queries.RecordView {
	return &queries.RecordView{
		ID:         b.ID,
		UserID:     b.UserID,
		BookID:     b.BookID,
		BookCode:   b.BookCode,
		BookTitle:  b.BookTitle,
		BorrowDate: b.BorrowDate,
		DueDate:    b.BorrowDate.AddDate(0, 0, b.LoanDays),
		Status:     b.Status,
		CreatedAt:  b.BorrowDate,
		UpdatedAt:  b.BorrowDate,
	}
}

func (b *RecordBuilder) BuildBorrowRequestDTO() reqdto.BorrowRequest {
	return reqdto.BorrowRequest{
		UserID:       b.UserID,
		BorrowImages: EvidencePhotos(),
	}
}

func (b *RecordBuilder) BuildReturnRequestDTO() reqdto.ReturnRequest {
	return reqdto.ReturnRequest{
		UserID:       b.UserID,
		ReturnImages: EvidencePhotos(),
	}
}
