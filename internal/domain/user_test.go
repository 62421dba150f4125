package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser("a@example.com", "longenough")
		require.NoError(t, err)
		assert.Zero(t, user.ID)
		assert.Equal(t, "a@example.com", user.Email)
	})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "longenough", ErrEmptyEmail},
		{"no at sign", "example.com", "longenough", ErrInvalidEmail},
		{"leading at sign", "@example.com", "longenough", ErrInvalidEmail},
		{"short password", "a@example.com", "short", ErrPasswordTooShort},
		{"long password", "a@example.com", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidate_LoadedFromStore(t *testing.T) {
	t.Parallel()

	// A user read back from the store has no plaintext password.
	user := &User{Email: "a@example.com", HashedPassword: "$2a$10$hash"}
	assert.NoError(t, user.Validate())

	missing := &User{Email: "a@example.com"}
	assert.ErrorIs(t, missing.Validate(), ErrEmptyHashedPassword)
}
