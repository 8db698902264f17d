//go:build unit

package password_test

import (
	"testing"

	"coupon-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := password.HashPassword("password123")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "password123", hash)

		assert.NoError(t, password.ComparePassword(hash, "password123"))
	})

	t.Run("hashing is salted", func(t *testing.T) {
		first, err := password.HashPassword("password123")
		require.NoError(t, err)
		second, err := password.HashPassword("password123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		_, err := password.HashPassword("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})
}

func TestComparePassword(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		err := password.ComparePassword(hash, "wrongpassword")
		assert.ErrorIs(t, err, password.ErrComparisonFailed)
	})

	t.Run("empty inputs are rejected", func(t *testing.T) {
		assert.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrInvalidPassword)
		assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)
	})
}
