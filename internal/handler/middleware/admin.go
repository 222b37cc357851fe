package middleware

import (
	"errors"
	"net/http"

	"library-lending/internal/handler/httperr"
	"library-lending/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const adminUserIDKey = "admin_user_id"

var errAdminHeaderMissing = errors.New("admin user header missing or malformed")

// AdminMiddleware guards administrative routes. The caller identifies
// itself with the X-Admin-User-Id header and the role is checked against
// the identity store on every request.
type AdminMiddleware struct {
	users queries.UserQueries
}

func NewAdminMiddleware(users queries.UserQueries) *AdminMiddleware {
	return &AdminMiddleware{users: users}
}

func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		headerVal := c.GetHeader("X-Admin-User-Id")
		if headerVal == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminHeaderMissing,
				"Admin identification required", httperr.ReasonForbidden)
			return
		}

		adminID, err := uuid.Parse(headerVal)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminHeaderMissing,
				"Admin identification required", httperr.ReasonForbidden)
			return
		}

		view, err := m.users.GetByID(c.Request.Context(), adminID)
		if err != nil {
			if errors.Is(err, queries.ErrUserNotFound) {
				httperr.AbortWithError(c, http.StatusForbidden, err,
					"Admin privileges required", httperr.ReasonForbidden)
				return
			}
			httperr.AbortWithError(c, http.StatusInternalServerError, err,
				"Internal server error", httperr.ReasonInternal)
			return
		}
		if view.Role != "admin" {
			httperr.AbortWithError(c, http.StatusForbidden, errAdminHeaderMissing,
				"Admin privileges required", httperr.ReasonForbidden)
			return
		}

		c.Set(adminUserIDKey, adminID)
		c.Next()
	}
}

func GetAdminUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(adminUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}
