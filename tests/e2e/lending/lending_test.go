//go:build e2e

package lending_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	reqdto "library-lending/internal/handler/dto/request"
	resdto "library-lending/internal/handler/dto/response"
	"library-lending/tests/common/builder"
	"library-lending/tests/common/dbtest"
	"library-lending/tests/common/httptest"
	"library-lending/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	borrowURL = "/api/borrow/%s"
	returnURL = "/api/borrow/return/%s"
	statusURL = "/api/borrow/status/%s/%s"
	countURL  = "/api/borrow/user/%s/count"
	activeURL = "/api/borrow/user/%s/active"
)

type LendingSuite struct {
	e2e.SharedSuite
}

func TestLendingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LendingSuite))
}

func (s *LendingSuite) borrowRequest(userID uuid.UUID) reqdto.BorrowRequest {
	return reqdto.BorrowRequest{UserID: userID, BorrowImages: builder.EvidencePhotos()}
}

func (s *LendingSuite) returnRequest(userID uuid.UUID) reqdto.ReturnRequest {
	return reqdto.ReturnRequest{UserID: userID, ReturnImages: builder.EvidencePhotos()}
}

func (s *LendingSuite) borrow(userID, bookID uuid.UUID) *resdto.RecordResponse {
	s.T().Helper()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf(borrowURL, bookID), s.borrowRequest(userID), "")

	var response resdto.RecordResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return &response
}

// =============================================================================
// TestBorrow
// =============================================================================

func (s *LendingSuite) TestBorrow() {
	s.Run("Normal case: borrowing decrements availability and opens a record", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "patron@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0001", 3)

		response := s.borrow(userID, bookID)

		require.Equal(t, userID, response.UserID)
		require.Equal(t, bookID, response.BookID)
		require.Equal(t, "BK-0001", response.BookCode)
		require.Equal(t, "borrowed", response.Status)
		require.Equal(t, response.BorrowDate.AddDate(0, 0, 15), response.DueDate)

		require.Equal(t, 2, dbtest.AvailableCopies(t, s.DB, bookID))
		require.Equal(t, 1, dbtest.ActiveBorrowCount(t, s.DB, userID))
	})

	s.Run("Error case: blocked user cannot borrow", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "blocked@example.com", "user")
		dbtest.BlockUser(t, s.DB, userID)
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0002", 1)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(borrowURL, bookID), s.borrowRequest(userID), "")

		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "user_blocked")
		require.Equal(t, 1, dbtest.AvailableCopies(t, s.DB, bookID))
	})

	s.Run("Error case: second borrow of the same book is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "repeat@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0003", 3)

		s.borrow(userID, bookID)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(borrowURL, bookID), s.borrowRequest(userID), "")

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already_borrowed")
		// The rejected attempt must not leak a copy.
		require.Equal(t, 2, dbtest.AvailableCopies(t, s.DB, bookID))
	})

	s.Run("Error case: borrow limit is enforced and the counter restored", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "collector@example.com", "user")
		for i := range 3 {
			bookID := dbtest.CreateTestBook(t, s.DB, fmt.Sprintf("BK-010%d", i), 1)
			s.borrow(userID, bookID)
		}

		fourthID := dbtest.CreateTestBook(t, s.DB, "BK-0104", 1)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(borrowURL, fourthID), s.borrowRequest(userID), "")

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "limit_reached")
		require.Equal(t, 1, dbtest.AvailableCopies(t, s.DB, fourthID))
		require.Equal(t, 3, dbtest.ActiveBorrowCount(t, s.DB, userID))
	})

	s.Run("Error case: exhausted book reports unavailable", func() {
		t := s.T()

		first := dbtest.CreateTestUser(t, s.DB, "first@example.com", "user")
		second := dbtest.CreateTestUser(t, s.DB, "second@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0005", 1)

		s.borrow(first, bookID)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(borrowURL, bookID), s.borrowRequest(second), "")

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "book_unavailable")
		require.Equal(t, 0, dbtest.AvailableCopies(t, s.DB, bookID))
	})

	s.Run("Error case: unknown book returns 404", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "nobody@example.com", "user")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(borrowURL, uuid.New()), s.borrowRequest(userID), "")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "book_not_found")
	})
}

// =============================================================================
// TestBorrowConcurrency - the copy counter under contention
// =============================================================================

func (s *LendingSuite) TestBorrowConcurrency() {
	s.Run("Concurrency: one copy, many borrowers, exactly one succeeds", func() {
		t := s.T()

		const borrowers = 8
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0200", 1)

		userIDs := make([]uuid.UUID, borrowers)
		for i := range userIDs {
			userIDs[i] = dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("racer%d@example.com", i), "user")
		}

		codes := make([]int, borrowers)
		var wg sync.WaitGroup
		for i, userID := range userIDs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
					fmt.Sprintf(borrowURL, bookID), s.borrowRequest(userID), "")
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				created++
			} else {
				require.Equal(t, http.StatusConflict, code)
			}
		}
		require.Equal(t, 1, created, "exactly one borrower may win the last copy")
		require.Equal(t, 0, dbtest.AvailableCopies(t, s.DB, bookID))
	})

	s.Run("Concurrency: the last limit slot cannot be won twice", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "lastslot@example.com", "user")
		for i := range 2 {
			bookID := dbtest.CreateTestBook(t, s.DB, fmt.Sprintf("BK-025%d", i), 1)
			s.borrow(userID, bookID)
		}

		contested := [2]uuid.UUID{
			dbtest.CreateTestBook(t, s.DB, "BK-0252", 1),
			dbtest.CreateTestBook(t, s.DB, "BK-0253", 1),
		}

		codes := make([]int, 2)
		var wg sync.WaitGroup
		for i, bookID := range contested {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
					fmt.Sprintf(borrowURL, bookID), s.borrowRequest(userID), "")
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		created := 0
		for i, code := range codes {
			if code == http.StatusCreated {
				created++
			} else {
				// The loser's book keeps its copy.
				require.Equal(t, 1, dbtest.AvailableCopies(t, s.DB, contested[i]))
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, 3, dbtest.ActiveBorrowCount(t, s.DB, userID))
	})

	s.Run("Concurrency: borrow limit holds for parallel requests by one user", func() {
		t := s.T()

		const books = 6
		userID := dbtest.CreateTestUser(t, s.DB, "parallel@example.com", "user")

		bookIDs := make([]uuid.UUID, books)
		for i := range bookIDs {
			bookIDs[i] = dbtest.CreateTestBook(t, s.DB, fmt.Sprintf("BK-030%d", i), 1)
		}

		codes := make([]int, books)
		var wg sync.WaitGroup
		for i, bookID := range bookIDs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
					fmt.Sprintf(borrowURL, bookID), s.borrowRequest(userID), "")
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				created++
			}
		}
		require.Equal(t, 3, created, "the per-user limit caps parallel borrows")
		require.Equal(t, 3, dbtest.ActiveBorrowCount(t, s.DB, userID))

		// Every losing book keeps its copy.
		borrowed := 0
		for _, bookID := range bookIDs {
			if dbtest.AvailableCopies(t, s.DB, bookID) == 0 {
				borrowed++
			}
		}
		require.Equal(t, 3, borrowed)
	})
}

// =============================================================================
// TestReturn
// =============================================================================

func (s *LendingSuite) TestReturn() {
	s.Run("Normal case: returning releases the copy and closes the record", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "returner@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0400", 2)
		borrowed := s.borrow(userID, bookID)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(returnURL, borrowed.ID), s.returnRequest(userID), "")

		var response resdto.RecordResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		require.Equal(t, "returned", response.Status)
		require.NotNil(t, response.ActualReturnDate)

		require.Equal(t, 2, dbtest.AvailableCopies(t, s.DB, bookID))
		require.Equal(t, 0, dbtest.ActiveBorrowCount(t, s.DB, userID))
	})

	s.Run("Normal case: the pair can be borrowed again after a return", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "again@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0401", 1)

		first := s.borrow(userID, bookID)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(returnURL, first.ID), s.returnRequest(userID), "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		second := s.borrow(userID, bookID)
		require.NotEqual(t, first.ID, second.ID)
	})

	s.Run("Error case: double return is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "doubler@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0402", 1)
		borrowed := s.borrow(userID, bookID)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(returnURL, borrowed.ID), s.returnRequest(userID), "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(returnURL, borrowed.ID), s.returnRequest(userID), "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already_returned")

		// The second return must not inflate the counter.
		require.Equal(t, 1, dbtest.AvailableCopies(t, s.DB, bookID))
	})

	s.Run("Error case: only the borrower may return", func() {
		t := s.T()

		owner := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "user")
		other := dbtest.CreateTestUser(t, s.DB, "other@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0403", 1)
		borrowed := s.borrow(owner, bookID)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(returnURL, borrowed.ID), s.returnRequest(other), "")

		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "not_owner")
		require.Equal(t, 1, dbtest.ActiveBorrowCount(t, s.DB, owner))
	})

	s.Run("Error case: unknown record returns 404", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "ghost@example.com", "user")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(returnURL, uuid.New()), s.returnRequest(userID), "")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "record_not_found")
	})
}

// =============================================================================
// TestStatusProjection
// =============================================================================

func (s *LendingSuite) TestStatusProjection() {
	s.Run("Normal case: status moves through the borrow lifecycle", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "watcher@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0500", 1)

		status := s.fetchStatus(bookID, userID)
		require.Equal(t, "canBorrow", status.Status)

		borrowed := s.borrow(userID, bookID)

		status = s.fetchStatus(bookID, userID)
		require.Equal(t, "borrowedByUser", status.Status)
		require.NotNil(t, status.ActiveRecordID)
		require.Equal(t, borrowed.ID, *status.ActiveRecordID)
		require.Equal(t, 1, status.BorrowCount)

		// Another user sees the exhausted copy.
		otherID := dbtest.CreateTestUser(t, s.DB, "onlooker@example.com", "user")
		status = s.fetchStatus(bookID, otherID)
		require.Equal(t, "unavailable", status.Status)
	})

	s.Run("Normal case: blocked user sees userBlocked first", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "barred@example.com", "user")
		bookID := dbtest.CreateTestBook(t, s.DB, "BK-0501", 1)
		s.borrow(userID, bookID)
		dbtest.BlockUser(t, s.DB, userID)

		status := s.fetchStatus(bookID, userID)
		require.Equal(t, "userBlocked", status.Status)
	})

	s.Run("Normal case: count endpoint tracks active borrows", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "counter@example.com", "user")
		for i := range 2 {
			bookID := dbtest.CreateTestBook(t, s.DB, fmt.Sprintf("BK-060%d", i), 1)
			s.borrow(userID, bookID)
		}

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(countURL, userID), nil, "")

		var response resdto.BorrowCountResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		require.Equal(t, 2, response.Count)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(activeURL, userID), nil, "")

		var records []*resdto.RecordResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &records)
		require.Len(t, records, 2)
	})
}

func (s *LendingSuite) fetchStatus(bookID, userID uuid.UUID) *resdto.BorrowStatusResponse {
	s.T().Helper()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		fmt.Sprintf(statusURL, bookID, userID), nil, "")

	var response resdto.BorrowStatusResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	return &response
}
