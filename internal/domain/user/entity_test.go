//go:build unit

package user_test

import (
	"strings"
	"testing"

	"coupon-api/internal/domain/user"
	"coupon-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "testadmin", actual.Username().Value())
		assert.Equal(t, "hashed_password", actual.PasswordHash())
		assert.Equal(t, "Test Admin", actual.DisplayName())
	})

	t.Run("every new user gets the Admin role", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, actual.Role())
	})
}

func TestUsername(t *testing.T) {
	t.Run("valid username", func(t *testing.T) {
		username, err := user.NewUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", username.Value())
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		username, err := user.NewUsername("  alice  ")
		require.NoError(t, err)
		assert.Equal(t, "alice", username.Value())
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := user.NewUsername("")
		assert.ErrorIs(t, err, user.ErrInvalidUsername)
	})

	t.Run("whitespace only username", func(t *testing.T) {
		_, err := user.NewUsername("   ")
		assert.ErrorIs(t, err, user.ErrInvalidUsername)
	})
}

func TestPassword(t *testing.T) {
	t.Run("minimum length password", func(t *testing.T) {
		password, err := user.NewPassword(strings.Repeat("a", 8))
		require.NoError(t, err)
		assert.Len(t, password.Value(), 8)
	})

	t.Run("below minimum length", func(t *testing.T) {
		_, err := user.NewPassword(strings.Repeat("a", 7))
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := user.NewPassword("")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		credentials, err := user.NewCredentials("alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice", credentials.Username().Value())
		assert.Equal(t, "password123", credentials.Password().Value())
	})

	t.Run("invalid username", func(t *testing.T) {
		_, err := user.NewCredentials("", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidUsername)
	})

	t.Run("invalid password", func(t *testing.T) {
		_, err := user.NewCredentials("alice", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestRole(t *testing.T) {
	t.Run("admin role", func(t *testing.T) {
		role, err := user.NewRole("Admin")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, role)
		assert.True(t, role.IsValid())
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := user.NewRole("Viewer")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("role comparison is case-sensitive", func(t *testing.T) {
		_, err := user.NewRole("admin")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
