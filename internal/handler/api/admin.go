package api

import (
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

type AdminHandler struct {
	catalogCommands  commands.CatalogCommands
	identityCommands commands.IdentityCommands
	bookQueries      queries.BookQueries
	userQueries      queries.UserQueries
	lendingQueries   queries.LendingQueries
}

func NewAdminHandler(
	catalog commands.CatalogCommands,
	identity commands.IdentityCommands,
	books queries.BookQueries,
	users queries.UserQueries,
	lending queries.LendingQueries,
) *AdminHandler {
	return &AdminHandler{
		catalogCommands:  catalog,
		identityCommands: identity,
		bookQueries:      books,
		userQueries:      users,
		lendingQueries:   lending,
	}
}

// @Summary List all books
// @Description Every book including fully borrowed ones
// @Tags admin
// @Produce json
// @Security AdminHeader
// @Success 200 {array} response.BookResponse
// @Router /admin/books [get]
func (h *AdminHandler) ListBooks(c *gin.Context) {
	views, err := h.bookQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookViews(views))
}

// @Summary Add book
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminHeader
// @Param request body request.AddBookRequest true "Book payload"
// @Success 201 {object} response.BookResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/books/add [post]
func (h *AdminHandler) AddBook(c *gin.Context) {
	var req reqdto.AddBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr,
			"Invalid request format", httperr.ReasonInvalidArgument)
		return
	}

	view, err := h.catalogCommands.AddBook(c.Request.Context(), commands.AddBookParams{
		Code:        req.Code,
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		About:       req.About,
		Image:       req.Image,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		h.abortCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookView(view))
}

// @Summary Edit book
// @Description Patches supplied fields; copy counters are clamped to stay consistent
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminHeader
// @Param bookId path string true "Book ID"
// @Param request body request.EditBookRequest true "Patch payload"
// @Success 200 {object} response.BookResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/books/edit/{bookId} [put]
func (h *AdminHandler) EditBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid book ID format", httperr.ReasonInvalidArgument)
		return
	}

	var req reqdto.EditBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr,
			"Invalid request format", httperr.ReasonInvalidArgument)
		return
	}

	view, err := h.catalogCommands.EditBook(c.Request.Context(), bookID, commands.EditBookParams{
		Code:            req.Code,
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		About:           req.About,
		Image:           req.Image,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
	})
	if err != nil {
		h.abortCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

// @Summary Delete book
// @Description Refused while any copy is out on loan
// @Tags admin
// @Produce json
// @Security AdminHeader
// @Param bookId path string true "Book ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/books/delete/{bookId} [delete]
func (h *AdminHandler) DeleteBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid book ID format", httperr.ReasonInvalidArgument)
		return
	}

	if err := h.catalogCommands.DeleteBook(c.Request.Context(), bookID); err != nil {
		h.abortCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security AdminHeader
// @Success 200 {array} response.UserResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	views, err := h.userQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Block user
// @Tags admin
// @Produce json
// @Security AdminHeader
// @Param userId path string true "User ID"
// @Success 200 {object} response.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/users/block/{userId} [post]
func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.setBlocked(c, true)
}

// @Summary Unblock user
// @Tags admin
// @Produce json
// @Security AdminHeader
// @Param userId path string true "User ID"
// @Success 200 {object} response.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/users/unblock/{userId} [post]
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.setBlocked(c, false)
}

// @Summary Borrow records for user
// @Description Full ledger for one user, active and returned
// @Tags admin
// @Produce json
// @Security AdminHeader
// @Param userId path string true "User ID"
// @Success 200 {array} response.RecordResponse
// @Router /admin/users/{userId}/borrows [get]
func (h *AdminHandler) UserBorrows(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid user ID format", httperr.ReasonInvalidArgument)
		return
	}

	views, err := h.lendingQueries.ListAllByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecordViews(views))
}

// @Summary Overdue records
// @Description Active records past their due date, with borrower details
// @Tags admin
// @Produce json
// @Security AdminHeader
// @Success 200 {array} response.OverdueRecordResponse
// @Router /admin/overdue-users [get]
func (h *AdminHandler) Overdue(c *gin.Context) {
	views, err := h.lendingQueries.ListOverdue(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverdueRecordViews(views))
}

func (h *AdminHandler) setBlocked(c *gin.Context, blocked bool) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid user ID format", httperr.ReasonInvalidArgument)
		return
	}

	view, err := h.identityCommands.SetUserBlocked(c.Request.Context(), userID, blocked)
	if err != nil {
		if errors.Is(err, commands.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				"User not found", httperr.ReasonUserNotFound)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

func (h *AdminHandler) abortCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Book validation failed", httperr.ReasonInvalidArgument)
	case errors.Is(err, commands.ErrBookNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"Book not found", httperr.ReasonBookNotFound)
	case errors.Is(err, commands.ErrDuplicateBookCode):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Book code already exists", httperr.ReasonDuplicateBookCode)
	case errors.Is(err, commands.ErrBookBorrowed):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Book has active borrowings", httperr.ReasonBookBorrowed)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
	}
}
