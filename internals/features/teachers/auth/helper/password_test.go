package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash is never the plaintext", func(t *testing.T) {
		hash, err := HashPassword("password1")
		require.NoError(t, err)
		assert.NotEqual(t, "password1", hash)
		assert.True(t, strings.HasPrefix(hash, "$2a$"))
	})

	t.Run("uses cost 10", func(t *testing.T) {
		hash, err := HashPassword("password1")
		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, 10, cost)
	})

	t.Run("salted", func(t *testing.T) {
		h1, err := HashPassword("samepassword")
		require.NoError(t, err)
		h2, err := HashPassword("samepassword")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := HashPassword("")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})
}

func TestCredentialStore_VerifyPassword(t *testing.T) {
	store := NewCredentialStore()
	hash, err := store.HashPassword("password1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		plain string
		want  bool
	}{
		{"exact original", "password1", true},
		{"different password", "password2", false},
		{"prefix of original", "password", false},
		{"case changed", "Password1", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.VerifyPassword(tt.plain, hash))
		})
	}

	t.Run("garbage hash", func(t *testing.T) {
		assert.False(t, store.VerifyPassword("password1", "not-a-hash"))
	})
}
