//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"coupon-api/internal/domain/user"
	"coupon-api/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-secret"

func newTestService(t *testing.T, duration time.Duration) *jwt.Service {
	t.Helper()
	service, err := jwt.NewService(testSecret, duration)
	require.NoError(t, err)
	return service
}

func TestNewService(t *testing.T) {
	t.Run("empty secret is rejected", func(t *testing.T) {
		_, err := jwt.NewService("", 24*time.Hour)
		assert.ErrorIs(t, err, jwt.ErrEmptySecret)
	})
}

func TestGenerateToken(t *testing.T) {
	service := newTestService(t, 24*time.Hour)

	t.Run("token carries username and role claims", func(t *testing.T) {
		token, err := service.GenerateToken("alice", user.RoleAdmin)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, string(user.RoleAdmin), claims.Role)
		assert.Equal(t, "alice", claims.Subject)
	})

	t.Run("expiry is issued-at plus the configured duration", func(t *testing.T) {
		token, err := service.GenerateToken("alice", user.RoleAdmin)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		require.NotNil(t, claims.IssuedAt)
		require.NotNil(t, claims.ExpiresAt)
		assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	})
}

func TestValidateToken(t *testing.T) {
	service := newTestService(t, 24*time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other, err := jwt.NewService("some-other-secret", 24*time.Hour)
		require.NoError(t, err)

		token, err := other.GenerateToken("alice", user.RoleAdmin)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := newTestService(t, 1*time.Millisecond)

		token, err := shortLived.GenerateToken("alice", user.RoleAdmin)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = shortLived.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
