package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "library-lending/internal/handler/dto/request"
	resdto "library-lending/internal/handler/dto/response"
	"library-lending/internal/handler/httperr"
	"library-lending/internal/usecase/commands"
	"library-lending/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LendingHandler struct {
	lendingCommands commands.LendingCommands
	lendingQueries  queries.LendingQueries
}

func NewLendingHandler(cmds commands.LendingCommands, qs queries.LendingQueries) *LendingHandler {
	return &LendingHandler{
		lendingCommands: cmds,
		lendingQueries:  qs,
	}
}

// @Summary Borrow a book
// @Description Reserve one copy of a book and open a borrowing record
// @Tags borrow
// @Accept json
// @Produce json
// @Param bookId path string true "Book ID"
// @Param request body request.BorrowRequest true "Borrow request"
// @Success 201 {object} response.RecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /borrow/{bookId} [post]
func (h *LendingHandler) Borrow(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid book ID format", httperr.ReasonInvalidArgument)
		return
	}

	var req reqdto.BorrowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr,
			"Invalid request format", httperr.ReasonInvalidArgument)
		return
	}

	view, err := h.lendingCommands.Borrow(c.Request.Context(), bookID, req.UserID, req.BorrowImages)
	if err != nil {
		h.abortLendingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRecordView(view))
}

// @Summary Return a book
// @Description Close a borrowing record and release the copy
// @Tags borrow
// @Accept json
// @Produce json
// @Param recordId path string true "Borrowing record ID"
// @Param request body request.ReturnRequest true "Return request"
// @Success 200 {object} response.RecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /borrow/return/{recordId} [post]
func (h *LendingHandler) Return(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("recordId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid record ID format", httperr.ReasonInvalidArgument)
		return
	}

	var req reqdto.ReturnRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr,
			"Invalid request format", httperr.ReasonInvalidArgument)
		return
	}

	view, err := h.lendingCommands.Return(c.Request.Context(), recordID, req.UserID, req.ReturnImages)
	if err != nil {
		h.abortLendingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecordView(view))
}

// @Summary Borrow status
// @Description Advisory borrow-status projection for a (book, user) pair
// @Tags borrow
// @Produce json
// @Param bookId path string true "Book ID"
// @Param userId path string true "User ID"
// @Success 200 {object} response.BorrowStatusResponse
// @Failure 404 {object} httperr.Response
// @Router /borrow/status/{bookId}/{userId} [get]
func (h *LendingHandler) Status(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid book ID format", httperr.ReasonInvalidArgument)
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid user ID format", httperr.ReasonInvalidArgument)
		return
	}

	view, err := h.lendingQueries.Status(c.Request.Context(), bookID, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				"User not found", httperr.ReasonUserNotFound)
		case errors.Is(err, queries.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				"Book not found", httperr.ReasonBookNotFound)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				"Internal server error", httperr.ReasonInternal)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBorrowStatusView(view))
}

// @Summary Active borrow count
// @Tags borrow
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.BorrowCountResponse
// @Router /borrow/user/{userId}/count [get]
func (h *LendingHandler) Count(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid user ID format", httperr.ReasonInvalidArgument)
		return
	}

	count, err := h.lendingQueries.CountActive(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.BorrowCountResponse{Count: count})
}

// @Summary Active borrows for user
// @Tags borrow
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} response.RecordResponse
// @Router /borrow/user/{userId}/active [get]
func (h *LendingHandler) Active(c *gin.Context) {
	h.listRecords(c, h.lendingQueries.ListActiveByUser)
}

// @Summary Borrow history for user
// @Tags borrow
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} response.RecordResponse
// @Router /borrow/user/{userId}/history [get]
func (h *LendingHandler) History(c *gin.Context) {
	h.listRecords(c, h.lendingQueries.ListHistoryByUser)
}

func (h *LendingHandler) listRecords(c *gin.Context, list func(context.Context, uuid.UUID) ([]*queries.RecordView, error)) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid user ID format", httperr.ReasonInvalidArgument)
		return
	}

	views, err := list(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecordViews(views))
}

func (h *LendingHandler) abortLendingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEvidenceValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Exactly four evidence photos are required", httperr.ReasonInvalidArgument)
	case errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"User not found", httperr.ReasonUserNotFound)
	case errors.Is(err, commands.ErrBookNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"Book not found", httperr.ReasonBookNotFound)
	case errors.Is(err, commands.ErrRecordNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"Borrowing record not found", httperr.ReasonRecordNotFound)
	case errors.Is(err, commands.ErrUserBlocked):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			"User is blocked from borrowing", httperr.ReasonUserBlocked)
	case errors.Is(err, commands.ErrNotRecordOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err,
			"Record belongs to another user", httperr.ReasonNotOwner)
	case errors.Is(err, commands.ErrBookUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"No copies available", httperr.ReasonBookUnavailable)
	case errors.Is(err, commands.ErrBorrowLimitReached):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Borrow limit reached", httperr.ReasonLimitReached)
	case errors.Is(err, commands.ErrAlreadyBorrowed):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Book already borrowed by this user", httperr.ReasonAlreadyBorrowed)
	case errors.Is(err, commands.ErrAlreadyReturned):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Record already returned", httperr.ReasonAlreadyReturned)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
	}
}
