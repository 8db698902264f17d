//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"coupon-api/internal/domain/user"
	resdto "coupon-api/internal/handler/dto/response"
	"coupon-api/tests/common/builder"
	"coupon-api/tests/common/dbtest"
	"coupon-api/tests/common/httptest"
	"coupon-api/tests/common/testutil"
	"coupon-api/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/login"
	registerURL = "/api/register"
	couponsURL  = "/api/coupons"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "testadmin", string(user.RoleAdmin))
}

func (s *authSuite) TestLogin() {
	s.Run("valid credentials return a user and token", func() {
		reqBody := builder.NewAuthBuilder().BuildLoginDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusOK, &response)
		s.Equal("testadmin", response.User.Username)
		s.Equal(string(user.RoleAdmin), response.User.Role)
		s.NotEmpty(response.Token)
	})

	s.Run("the issued token is accepted by protected endpoints", func() {
		token := s.login(builder.NewAuthBuilder().BuildLoginDTO())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, couponsURL, nil, token)
		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("unknown username", func() {
		reqBody := builder.NewAuthBuilder().WithUsername("nobody").BuildLoginDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Username or password is incorrect.")
	})

	s.Run("wrong password", func() {
		reqBody := builder.NewAuthBuilder().WithPassword("wrongpassword").BuildLoginDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Username or password is incorrect.")
	})

	s.Run("missing fields are rejected before authentication", func() {
		body := testutil.DtoMap(s.T(), builder.NewAuthBuilder().BuildLoginDTO(), testutil.Field("password", nil))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Invalid request format.")
	})
}

func (s *authSuite) TestRegister() {
	s.Run("new user is created with the Admin role", func() {
		reqBody := builder.NewAuthBuilder().WithUsername("newuser").BuildRegisterDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")

		var result map[string]any
		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusOK, &result)
		s.Equal("newuser", result["username"])
		s.Equal(string(user.RoleAdmin), result["role"])
		s.NotContains(result, "password")
	})

	s.Run("registered user can log in", func() {
		reqBody := builder.NewAuthBuilder().WithUsername("newuser").BuildRegisterDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusOK, nil)

		token := s.login(builder.NewAuthBuilder().WithUsername("newuser").BuildLoginDTO())
		s.NotEmpty(token)
	})

	s.Run("taken username", func() {
		reqBody := builder.NewAuthBuilder().BuildRegisterDTO() // testadmin already seeded

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Username already exists.")
	})

	s.Run("short password", func() {
		body := testutil.DtoMap(s.T(),
			builder.NewAuthBuilder().WithUsername("another").BuildRegisterDTO(),
			testutil.Field("password", "short"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertFailureEnvelope(s.T(), rec, http.StatusBadRequest, "Invalid request format.")
	})
}

func (s *authSuite) login(req any) string {
	s.T().Helper()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, req, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessEnvelope(s.T(), rec, http.StatusOK, &response)
	return response.Token
}
