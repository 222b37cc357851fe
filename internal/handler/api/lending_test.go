//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"library-lending/internal/handler/api"
	reqdto "library-lending/internal/handler/dto/request"
	resdto "library-lending/internal/handler/dto/response"
	"library-lending/internal/usecase/commands"
	"library-lending/internal/usecase/queries"
	"library-lending/tests/common/builder"
	"library-lending/tests/common/httptest"
	"library-lending/tests/common/testutil"
	commandsmock "library-lending/tests/mock/commands"
	queriesmock "library-lending/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LendingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLendingCommands
	mockQueries  *queriesmock.MockLendingQueries
	handler      *api.LendingHandler
}

func (s *LendingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterCustomValidations())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLendingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLendingQueries(s.mockCtrl)
	s.handler = api.NewLendingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/borrow/:bookId", s.handler.Borrow)
	s.router.POST("/borrow/return/:recordId", s.handler.Return)
	s.router.GET("/borrow/status/:bookId/:userId", s.handler.Status)
	s.router.GET("/borrow/user/:userId/count", s.handler.Count)
	s.router.GET("/borrow/user/:userId/active", s.handler.Active)
	s.router.GET("/borrow/user/:userId/history", s.handler.History)
}

func (s *LendingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLendingHandlerSuite(t *testing.T) {
	suite.Run(t, new(LendingHandlerTestSuite))
}

// ================================================================================
// TestBorrow
// ================================================================================

func (s *LendingHandlerTestSuite) TestBorrow() {
	record := builder.NewRecordBuilder()
	url := "/borrow/" + record.BookID.String()

	reqBody := record.BuildBorrowRequestDTO()
	returnView := record.BuildView()

	s.Run("success: returns 201 Created with the new record", func() {
		s.mockCommands.EXPECT().
			Borrow(gomock.Any(), record.BookID, record.UserID, reqBody.BorrowImages).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.BookCode, response.BookCode)
		s.Equal("borrowed", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing userId", mutate: testutil.Field("userId", nil)},
			{name: "missing borrowImages", mutate: testutil.Field("borrowImages", nil)},
			{name: "three photos", mutate: testutil.Field("borrowImages", builder.EvidencePhotos()[:3])},
			{name: "five photos", mutate: testutil.Field("borrowImages", append(builder.EvidencePhotos(), "data:image/jpeg;base64,EEEE"))},
			{name: "photo not a data uri", mutate: testutil.Field("borrowImages", []string{
				"data:image/jpeg;base64,AAAA", "http://example.com/b.jpg",
				"data:image/jpeg;base64,CCCC", "data:image/jpeg;base64,DDDD",
			})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_argument")
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid book ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/borrow/not-a-uuid", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_argument")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedReason string
		}{
			{
				name:           "user not found",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedReason: "user_not_found",
			},
			{
				name:           "book not found",
				commandsError:  commands.ErrBookNotFound,
				expectedStatus: http.StatusNotFound,
				expectedReason: "book_not_found",
			},
			{
				name:           "user blocked",
				commandsError:  commands.ErrUserBlocked,
				expectedStatus: http.StatusForbidden,
				expectedReason: "user_blocked",
			},
			{
				name:           "no copies available",
				commandsError:  commands.ErrBookUnavailable,
				expectedStatus: http.StatusConflict,
				expectedReason: "book_unavailable",
			},
			{
				name:           "borrow limit reached",
				commandsError:  commands.ErrBorrowLimitReached,
				expectedStatus: http.StatusConflict,
				expectedReason: "limit_reached",
			},
			{
				name:           "already borrowed by this user",
				commandsError:  commands.ErrAlreadyBorrowed,
				expectedStatus: http.StatusConflict,
				expectedReason: "already_borrowed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedReason: "internal",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Borrow(gomock.Any(), record.BookID, record.UserID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedReason)
			})
		}
	})
}

// ================================================================================
// TestReturn
// ================================================================================

func (s *LendingHandlerTestSuite) TestReturn() {
	record := builder.NewRecordBuilder()
	record.Status = "returned"
	url := "/borrow/return/" + record.ID.String()

	reqBody := record.BuildReturnRequestDTO()
	returnView := record.BuildView()

	s.Run("success: returns 200 OK with the closed record", func() {
		s.mockCommands.EXPECT().
			Return(gomock.Any(), record.ID, record.UserID, reqBody.ReturnImages).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("returned", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid record ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/borrow/return/not-a-uuid", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_argument")
	})

	s.Run("error: 400 Bad Request on missing photos", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("returnImages", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_argument")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedReason string
		}{
			{
				name:           "record not found",
				commandsError:  commands.ErrRecordNotFound,
				expectedStatus: http.StatusNotFound,
				expectedReason: "record_not_found",
			},
			{
				name:           "not the record owner",
				commandsError:  commands.ErrNotRecordOwner,
				expectedStatus: http.StatusForbidden,
				expectedReason: "not_owner",
			},
			{
				name:           "already returned",
				commandsError:  commands.ErrAlreadyReturned,
				expectedStatus: http.StatusConflict,
				expectedReason: "already_returned",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedReason: "internal",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Return(gomock.Any(), record.ID, record.UserID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedReason)
			})
		}
	})
}

// ================================================================================
// TestStatus
// ================================================================================

func (s *LendingHandlerTestSuite) TestStatus() {
	bookID := uuid.New()
	userID := uuid.New()
	url := "/borrow/status/" + bookID.String() + "/" + userID.String()

	s.Run("success: returns 200 OK with the projection", func() {
		recordID := uuid.New()
		view := &queries.BorrowStatusView{
			Status:         queries.BorrowStatusBorrowedByUser,
			ActiveRecordID: &recordID,
			BorrowCount:    2,
		}

		s.mockQueries.EXPECT().Status(gomock.Any(), bookID, userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BorrowStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("borrowedByUser", response.Status)
		s.Equal(2, response.BorrowCount)
		s.Require().NotNil(response.ActiveRecordID)
		s.Equal(recordID, *response.ActiveRecordID)
	})

	s.Run("error: 400 Bad Request for invalid user ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/borrow/status/"+bookID.String()+"/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_argument")
	})

	s.Run("error: 404 Not Found for missing book", func() {
		s.mockQueries.EXPECT().Status(gomock.Any(), bookID, userID).
			Return(nil, queries.ErrBookNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "book_not_found")
	})

	s.Run("error: 404 Not Found for missing user", func() {
		s.mockQueries.EXPECT().Status(gomock.Any(), bookID, userID).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user_not_found")
	})
}

// ================================================================================
// TestCount / TestActive / TestHistory
// ================================================================================

func (s *LendingHandlerTestSuite) TestCount() {
	userID := uuid.New()
	url := "/borrow/user/" + userID.String() + "/count"

	s.Run("success: returns 200 OK with the active count", func() {
		s.mockQueries.EXPECT().CountActive(gomock.Any(), userID).
			Return(2, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BorrowCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().CountActive(gomock.Any(), userID).
			Return(0, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "internal")
	})
}

func (s *LendingHandlerTestSuite) TestActive() {
	userID := uuid.New()
	url := "/borrow/user/" + userID.String() + "/active"

	record := builder.NewRecordBuilder()
	record.UserID = userID

	s.Run("success: returns 200 OK with the active records", func() {
		s.mockQueries.EXPECT().ListActiveByUser(gomock.Any(), userID).
			Return([]*queries.RecordView{record.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(record.ID, response[0].ID)
	})

	s.Run("error: 400 Bad Request for invalid user ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/borrow/user/not-a-uuid/active", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_argument")
	})
}

func (s *LendingHandlerTestSuite) TestHistory() {
	userID := uuid.New()
	url := "/borrow/user/" + userID.String() + "/history"

	record := builder.NewRecordBuilder()
	record.UserID = userID
	record.Status = "returned"

	s.Run("success: returns 200 OK with returned records", func() {
		s.mockQueries.EXPECT().ListHistoryByUser(gomock.Any(), userID).
			Return([]*queries.RecordView{record.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.RecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("returned", response[0].Status)
	})
}
