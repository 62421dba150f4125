package mocks

import (
	"context"

	"github.com/draca/medium-api/internal/domain"
	"github.com/draca/medium-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// CreateFn allows test cases to mock the Create behavior
	CreateFn func(ctx context.Context, user *domain.User) error

	// GetByEmailFn allows test cases to mock the GetByEmail behavior
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// Default values used when functions aren't explicitly defined
	User *domain.User
	Err  error
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the store.UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

// GetByEmail implements the store.UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.User, nil
}
