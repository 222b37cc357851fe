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
)

type AuthHandler struct {
	identityCommands commands.IdentityCommands
	userQueries      queries.UserQueries
}

func NewAuthHandler(cmds commands.IdentityCommands, qs queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		identityCommands: cmds,
		userQueries:      qs,
	}
}

// @Summary Google login boundary
// @Description Looks up the signed-in email; a missing profile signals completion is needed
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.GoogleLoginRequest true "Login payload"
// @Success 200 {object} response.GoogleLoginResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/google-login [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req reqdto.GoogleLoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr,
			"Invalid request format", httperr.ReasonInvalidArgument)
		return
	}

	view, err := h.userQueries.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}

	if view == nil {
		c.JSON(http.StatusOK, resdto.GoogleLoginResponse{NeedsCompletion: true})
		return
	}
	c.JSON(http.StatusOK, resdto.GoogleLoginResponse{User: resdto.FromUserView(view)})
}

// @Summary Complete profile
// @Description Registers a profile, or refreshes an existing one matched by email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.CompleteProfileRequest true "Profile payload"
// @Success 200 {object} response.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/complete-profile [post]
func (h *AuthHandler) CompleteProfile(c *gin.Context) {
	var req reqdto.CompleteProfileRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr,
			"Invalid request format", httperr.ReasonInvalidArgument)
		return
	}

	view, err := h.identityCommands.CompleteProfile(c.Request.Context(), commands.CompleteProfileParams{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.PhoneNumber,
		Photo: req.Photo,
	})
	if err != nil {
		if errors.Is(err, commands.ErrProfileValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"Profile validation failed", httperr.ReasonInvalidArgument)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", httperr.ReasonInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
