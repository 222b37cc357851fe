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
	"library-lending/tests/common/builder"
	"library-lending/tests/common/httptest"
	"library-lending/tests/common/testutil"
	commandsmock "library-lending/tests/mock/commands"
	queriesmock "library-lending/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockIdentity *commandsmock.MockIdentityCommands
	mockUsers    *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterCustomValidations())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockIdentity = commandsmock.NewMockIdentityCommands(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockIdentity, s.mockUsers)

	s.router.POST("/auth/google-login", s.handler.GoogleLogin)
	s.router.POST("/auth/complete-profile", s.handler.CompleteProfile)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// ================================================================================
// TestGoogleLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestGoogleLogin() {
	url := "/auth/google-login"

	user := builder.NewUserBuilder()
	reqBody := reqdto.GoogleLoginRequest{Email: user.Email, Name: user.Name}

	s.Run("success: known email returns the profile", func() {
		s.mockUsers.EXPECT().GetByEmail(gomock.Any(), user.Email).
			Return(user.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.GoogleLoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.NeedsCompletion)
		s.Require().NotNil(response.User)
		s.Equal(user.Email, response.User.Email)
	})

	s.Run("success: unknown email signals profile completion", func() {
		s.mockUsers.EXPECT().GetByEmail(gomock.Any(), user.Email).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.GoogleLoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.NeedsCompletion)
		s.Nil(response.User)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing name", mutate: testutil.Field("name", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_argument")
			})
		}
	})

	s.Run("error: 500 on lookup failure", func() {
		s.mockUsers.EXPECT().GetByEmail(gomock.Any(), user.Email).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "internal")
	})
}

// ================================================================================
// TestCompleteProfile
// ================================================================================

func (s *AuthHandlerTestSuite) TestCompleteProfile() {
	url := "/auth/complete-profile"

	user := builder.NewUserBuilder()
	reqBody := user.BuildCompleteProfileRequestDTO()

	s.Run("success: returns 200 OK with the registered profile", func() {
		s.mockIdentity.EXPECT().
			CompleteProfile(gomock.Any(), commands.CompleteProfileParams{
				Email: user.Email,
				Name:  user.Name,
				Phone: user.Phone,
				Photo: user.Photo,
			}).
			Return(user.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(user.Email, response.Email)
		s.Equal(user.Phone, response.PhoneNumber)
		s.Equal("user", response.Role)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "phone too short", mutate: testutil.Field("phoneNumber", "012345678")},
			{name: "phone with letters", mutate: testutil.Field("phoneNumber", "01234abcde")},
			{name: "photo not a data uri", mutate: testutil.Field("photo", "https://example.com/me.jpg")},
			{name: "missing photo", mutate: testutil.Field("photo", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_argument")
			})
		}
	})

	s.Run("error: 400 Bad Request on domain validation failure", func() {
		s.mockIdentity.EXPECT().CompleteProfile(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrProfileValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_argument")
	})
}
