//go:build unit

package lending_test

import (
	"testing"
	"time"

	"library-lending/internal/domain/lending"
	"library-lending/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBorrowingRecord(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		borrowDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		actual, err := builder.NewRecordBuilder().With(func(b *builder.RecordBuilder) {
			b.BorrowDate = borrowDate
			b.LoanDays = 15
		}).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, lending.StatusBorrowed, actual.Status())
		assert.Equal(t, borrowDate, actual.BorrowDate())
		assert.Equal(t, borrowDate.AddDate(0, 0, 15), actual.DueDate())
		assert.Nil(t, actual.ActualReturnDate())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.BorrowEvidence().IsEmpty())
		assert.True(t, actual.ReturnEvidence().IsEmpty())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewRecordBuilder()
		r1, err1 := b.BuildDomain()
		r2, err2 := b.BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, r1.ID(), r2.ID())
	})
}

func TestEvidence(t *testing.T) {
	tests := []struct {
		name   string
		photos []string
		errIs  error
	}{
		{
			name:   "four data-uri photos",
			photos: builder.EvidencePhotos(),
		},
		{
			name:   "too few photos",
			photos: builder.EvidencePhotos()[:3],
			errIs:  lending.ErrEvidenceCount,
		},
		{
			name:   "too many photos",
			photos: append(builder.EvidencePhotos(), "data:image/jpeg;base64,EEEE"),
			errIs:  lending.ErrEvidenceCount,
		},
		{
			name:   "nil photos",
			photos: nil,
			errIs:  lending.ErrEvidenceCount,
		},
		{
			name:   "one photo not a data uri",
			photos: []string{"data:image/jpeg;base64,AAAA", "http://example.com/b.jpg", "data:image/jpeg;base64,CCCC", "data:image/jpeg;base64,DDDD"},
			errIs:  lending.ErrInvalidEvidencePhoto,
		},
		{
			name:   "empty string photo",
			photos: []string{"data:image/jpeg;base64,AAAA", "data:image/jpeg;base64,BBBB", "data:image/jpeg;base64,CCCC", ""},
			errIs:  lending.ErrInvalidEvidencePhoto,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := lending.NewEvidence(tt.photos)

			if tt.errIs != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.photos, actual.Photos())
		})
	}

	t.Run("photos are copied on both sides", func(t *testing.T) {
		src := builder.EvidencePhotos()
		evidence, err := lending.NewEvidence(src)
		require.NoError(t, err)

		src[0] = "mutated"
		out := evidence.Photos()
		assert.Equal(t, "data:image/jpeg;base64,AAAA", out[0])

		out[1] = "mutated"
		assert.Equal(t, "data:image/jpeg;base64,BBBB", evidence.Photos()[1])
	})
}

func TestMarkReturned(t *testing.T) {
	returnEvidence, err := lending.NewEvidence(builder.EvidencePhotos())
	require.NoError(t, err)

	t.Run("owner returns an active record", func(t *testing.T) {
		b := builder.NewRecordBuilder()
		record, err := b.BuildDomain()
		require.NoError(t, err)

		returnedAt := b.BorrowDate.AddDate(0, 0, 3)
		err = record.MarkReturned(b.UserID, returnEvidence, returnedAt)
		require.NoError(t, err)

		assert.Equal(t, lending.StatusReturned, record.Status())
		assert.False(t, record.IsActive())
		require.NotNil(t, record.ActualReturnDate())
		assert.Equal(t, returnedAt, *record.ActualReturnDate())
		assert.Equal(t, returnEvidence.Photos(), record.ReturnEvidence().Photos())
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		record, err := builder.NewRecordBuilder().BuildDomain()
		require.NoError(t, err)

		err = record.MarkReturned(uuid.New(), returnEvidence, time.Now())
		require.ErrorIs(t, err, lending.ErrNotOwner)
		assert.Equal(t, lending.StatusBorrowed, record.Status())
		assert.Nil(t, record.ActualReturnDate())
	})

	t.Run("second return is rejected", func(t *testing.T) {
		b := builder.NewRecordBuilder()
		record, err := b.BuildDomain()
		require.NoError(t, err)

		firstReturn := b.BorrowDate.AddDate(0, 0, 2)
		require.NoError(t, record.MarkReturned(b.UserID, returnEvidence, firstReturn))

		err = record.MarkReturned(b.UserID, returnEvidence, firstReturn.AddDate(0, 0, 1))
		require.ErrorIs(t, err, lending.ErrAlreadyReturned)
		assert.Equal(t, firstReturn, *record.ActualReturnDate())
	})
}

func TestIsOverdue(t *testing.T) {
	borrowDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	b := builder.NewRecordBuilder().With(func(b *builder.RecordBuilder) {
		b.BorrowDate = borrowDate
		b.LoanDays = 15
	})

	t.Run("before due date", func(t *testing.T) {
		record, err := b.BuildDomain()
		require.NoError(t, err)

		assert.False(t, record.IsOverdue(borrowDate.AddDate(0, 0, 14)))
	})

	t.Run("on due date", func(t *testing.T) {
		record, err := b.BuildDomain()
		require.NoError(t, err)

		assert.False(t, record.IsOverdue(borrowDate.AddDate(0, 0, 15)))
	})

	t.Run("after due date", func(t *testing.T) {
		record, err := b.BuildDomain()
		require.NoError(t, err)

		assert.True(t, record.IsOverdue(borrowDate.AddDate(0, 0, 16)))
	})

	t.Run("returned record is never overdue", func(t *testing.T) {
		record, err := b.BuildDomain()
		require.NoError(t, err)

		evidence, err := lending.NewEvidence(builder.EvidencePhotos())
		require.NoError(t, err)
		require.NoError(t, record.MarkReturned(b.UserID, evidence, borrowDate.AddDate(0, 0, 20)))

		assert.False(t, record.IsOverdue(borrowDate.AddDate(0, 0, 30)))
	})
}
