//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"library-lending/internal/infra"
	"library-lending/internal/pkg/clock"
	"library-lending/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxActiveBorrows = 3

// stubLendingStore answers the fixed values set on it.
type stubLendingStore struct {
	activePair  *queries.RecordView
	activeCount int
	err         error
}

func (s *stubLendingStore) FindByID(context.Context, uuid.UUID) (*queries.RecordView, error) {
	return nil, s.err
}

func (s *stubLendingStore) FindActivePair(context.Context, uuid.UUID, uuid.UUID) (*queries.RecordView, error) {
	return s.activePair, s.err
}

func (s *stubLendingStore) CountActiveByUser(context.Context, uuid.UUID) (int, error) {
	return s.activeCount, s.err
}

func (s *stubLendingStore) FindActiveByUser(context.Context, uuid.UUID) ([]*queries.RecordView, error) {
	return nil, s.err
}

func (s *stubLendingStore) FindHistoryByUser(context.Context, uuid.UUID) ([]*queries.RecordView, error) {
	return nil, s.err
}

func (s *stubLendingStore) FindAllByUser(context.Context, uuid.UUID) ([]*queries.RecordView, error) {
	return nil, s.err
}

func (s *stubLendingStore) FindOverdue(_ context.Context, now time.Time) ([]*queries.OverdueRecordView, error) {
	return nil, s.err
}

type stubGateStore struct {
	gate      *queries.UserBorrowGate
	gateErr   error
	available int
	availErr  error
}

func (s *stubGateStore) UserBorrowGate(context.Context, uuid.UUID) (*queries.UserBorrowGate, error) {
	return s.gate, s.gateErr
}

func (s *stubGateStore) BookAvailability(context.Context, uuid.UUID) (int, error) {
	return s.available, s.availErr
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()
	userID := uuid.New()
	recordID := uuid.New()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	activeView := &queries.RecordView{ID: recordID, UserID: userID, BookID: bookID, Status: "borrowed"}
	notFound := infra.WrapRepoErr("no row", errors.New("no rows"), infra.KindNotFound)

	testCases := []struct {
		name           string
		store          *stubLendingStore
		gate           *stubGateStore
		expectedStatus string
		expectedCount  int
		expectRecordID bool
		errIs          error
	}{
		{
			name:           "blocked user wins over everything else",
			store:          &stubLendingStore{activePair: activeView, activeCount: maxActiveBorrows},
			gate:           &stubGateStore{gate: &queries.UserBorrowGate{ID: userID, IsBlocked: true}},
			expectedStatus: queries.BorrowStatusUserBlocked,
		},
		{
			name:           "active pair wins over availability and limit",
			store:          &stubLendingStore{activePair: activeView, activeCount: maxActiveBorrows},
			gate:           &stubGateStore{gate: &queries.UserBorrowGate{ID: userID}, available: 0},
			expectedStatus: queries.BorrowStatusBorrowedByUser,
			expectedCount:  maxActiveBorrows,
			expectRecordID: true,
		},
		{
			name:           "unavailable wins over limit",
			store:          &stubLendingStore{activeCount: maxActiveBorrows},
			gate:           &stubGateStore{gate: &queries.UserBorrowGate{ID: userID}, available: 0},
			expectedStatus: queries.BorrowStatusUnavailable,
			expectedCount:  maxActiveBorrows,
		},
		{
			name:           "limit reached",
			store:          &stubLendingStore{activeCount: maxActiveBorrows},
			gate:           &stubGateStore{gate: &queries.UserBorrowGate{ID: userID}, available: 2},
			expectedStatus: queries.BorrowStatusLimitReached,
			expectedCount:  maxActiveBorrows,
		},
		{
			name:           "can borrow",
			store:          &stubLendingStore{activeCount: 1},
			gate:           &stubGateStore{gate: &queries.UserBorrowGate{ID: userID}, available: 2},
			expectedStatus: queries.BorrowStatusCanBorrow,
			expectedCount:  1,
		},
		{
			name:  "unknown user",
			store: &stubLendingStore{},
			gate:  &stubGateStore{gateErr: notFound},
			errIs: queries.ErrUserNotFound,
		},
		{
			name:  "unknown book",
			store: &stubLendingStore{},
			gate:  &stubGateStore{gate: &queries.UserBorrowGate{ID: userID}, availErr: notFound},
			errIs: queries.ErrBookNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := queries.NewLendingQueries(tc.store, tc.gate, clk, maxActiveBorrows)

			view, err := q.Status(ctx, bookID, userID)

			if tc.errIs != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, view)
			assert.Equal(t, tc.expectedStatus, view.Status)
			assert.Equal(t, tc.expectedCount, view.BorrowCount)
			if tc.expectRecordID {
				require.NotNil(t, view.ActiveRecordID)
				assert.Equal(t, recordID, *view.ActiveRecordID)
			} else {
				assert.Nil(t, view.ActiveRecordID)
			}
		})
	}

	t.Run("store failure surfaces as an error", func(t *testing.T) {
		q := queries.NewLendingQueries(
			&stubLendingStore{err: errors.New("connection reset")},
			&stubGateStore{gate: &queries.UserBorrowGate{ID: userID}},
			clk, maxActiveBorrows,
		)

		view, err := q.Status(ctx, bookID, userID)
		require.Error(t, err)
		assert.Nil(t, view)
	})
}
