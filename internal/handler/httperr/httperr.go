package httperr

import (
	"github.com/gin-gonic/gin"
)

// Stable machine-readable reason tokens carried next to the human message.
const (
	ReasonInvalidArgument   = "invalid_argument"
	ReasonUserNotFound      = "user_not_found"
	ReasonBookNotFound      = "book_not_found"
	ReasonRecordNotFound    = "record_not_found"
	ReasonUserBlocked       = "user_blocked"
	ReasonNotOwner          = "not_owner"
	ReasonBookUnavailable   = "book_unavailable"
	ReasonLimitReached      = "limit_reached"
	ReasonAlreadyBorrowed   = "already_borrowed"
	ReasonAlreadyReturned   = "already_returned"
	ReasonDuplicateBookCode = "duplicate_book_code"
	ReasonBookBorrowed      = "book_borrowed"
	ReasonForbidden         = "forbidden"
	ReasonInternal          = "internal"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Reason string `json:"reason,omitempty"`
	Detail any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, reason string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Reason: reason}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
