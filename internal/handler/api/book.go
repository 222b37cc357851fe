package api

import (
	"errors"
	"net/http"

	resdto "library-lending/internal/handler/dto/response"
	"library-lending/internal/handler/httperr"
	"library-lending/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidPathParam = errors.New("invalid path parameter")

type BookHandler struct {
	books queries.BookQueries
}

func NewBookHandler(books queries.BookQueries) *BookHandler {
	return &BookHandler{books: books}
}

// @Summary List available books
// @Description Books with at least one free copy
// @Tags books
// @Produce json
// @Success 200 {array} response.BookListItemResponse
// @Router /books [get]
func (h *BookHandler) ListAvailable(c *gin.Context) {
	items, err := h.books.ListAvailable(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookListItems(items))
}

// @Summary Get book
// @Description Book detail by ID
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} response.BookResponse
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathParam,
			"Invalid book ID format", httperr.ReasonInvalidArgument)
		return
	}

	view, err := h.books.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err,
				"Book not found", httperr.ReasonBookNotFound)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}
