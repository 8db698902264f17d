package api

import (
	"net/http"

	reqdto "coupon-api/internal/handler/dto/request"
	resdto "coupon-api/internal/handler/dto/response"
	"coupon-api/internal/handler/httperr"
	"coupon-api/internal/pkg/errs"
	"coupon-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary User login
// @Description Login with username and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Invalid request format.")
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrInvalidCredentials):
			// Never reveal which part of the credentials was wrong
			httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Username or password is incorrect.")
		default:
			httperr.AbortWithEnvelope(c, http.StatusInternalServerError, err, "Internal server error.")
		}
		return
	}

	resdto.Write(c, resdto.OK(resdto.LoginResponse{
		User:  result.User,
		Token: result.Token,
	}))
}

// @Summary User registration
// @Description Register a new user; every registered user gets the Admin role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Router /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Invalid request format.")
		return
	}

	unique, err := h.authUseCase.IsUsernameUnique(c.Request.Context(), req.Username)
	if err != nil {
		httperr.AbortWithEnvelope(c, http.StatusInternalServerError, err, "Internal server error.")
		return
	}
	if !unique {
		httperr.AbortWithEnvelope(c, http.StatusBadRequest, usecase.ErrDuplicateUsername, "Username already exists.")
		return
	}

	created, err := h.authUseCase.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrDuplicateUsername):
			httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Username already exists.")
		case errs.Is(err, usecase.ErrRegistrationFailed):
			httperr.AbortWithEnvelope(c, http.StatusBadRequest, err, "Not valid for registration.")
		default:
			httperr.AbortWithEnvelope(c, http.StatusInternalServerError, err, "Internal server error.")
		}
		return
	}

	resdto.Write(c, resdto.OK(created))
}
