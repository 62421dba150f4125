package store

import (
	"context"

	"github.com/draca/medium-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The database assigns the ID,
	// which is written back into the entity before returning.
	// Returns ErrEmailExists if the email is already registered.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
