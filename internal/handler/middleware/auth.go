package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"coupon-api/internal/domain/user"
	"coupon-api/internal/handler/dto/response"
	"coupon-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUsernameKey = "username"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, response.Failure(http.StatusUnauthorized, "Access token required."))
			c.Abort()
			return
		}

		username, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, response.Failure(http.StatusUnauthorized, "Invalid or expired token."))
			c.Abort()
			return
		}

		c.Set(ctxUsernameKey, username)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"username": username,
			"role":     string(role),
		})
		c.Next()
	}
}

// RequireRole gates an endpoint on an exact role claim. Must run after
// RequireAuth().
func (m *AuthMiddleware) RequireRole(required user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, response.Failure(http.StatusInternalServerError, "Internal server error."))
			c.Abort()
			return
		}

		if role != required {
			c.JSON(http.StatusForbidden, response.Failure(http.StatusForbidden, "Insufficient permissions."))
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
