package mocks

import (
	"context"
	"sync"

	"github.com/draca/medium-api/internal/domain"
	"github.com/draca/medium-api/internal/store"
)

// MockBlogStore implements store.BlogStore for testing. It records call
// counts so tests can assert that short-circuiting paths (auth failure,
// validation failure) never reach the store.
type MockBlogStore struct {
	mu sync.Mutex

	// CreateFn allows test cases to mock the Create behavior
	CreateFn func(ctx context.Context, blog *domain.Blog) error

	// UpdateFn allows test cases to mock the Update behavior
	UpdateFn func(ctx context.Context, id int64, title, content string) (*domain.Blog, error)

	// ListFn allows test cases to mock the List behavior
	ListFn func(ctx context.Context) ([]*domain.Blog, error)

	// GetByIDFn allows test cases to mock the GetByID behavior
	GetByIDFn func(ctx context.Context, id int64) (*domain.Blog, error)

	// Call counters
	CreateCalls  int
	UpdateCalls  int
	ListCalls    int
	GetByIDCalls int

	// Default values used when functions aren't explicitly defined
	Blog  *domain.Blog
	Blogs []*domain.Blog
	Err   error
}

// Ensure MockBlogStore implements store.BlogStore
var _ store.BlogStore = (*MockBlogStore)(nil)

// Create implements the store.BlogStore interface
func (m *MockBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, blog)
	}
	return m.Err
}

// Update implements the store.BlogStore interface
func (m *MockBlogStore) Update(ctx context.Context, id int64, title, content string) (*domain.Blog, error) {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, title, content)
	}
	return m.Blog, m.Err
}

// List implements the store.BlogStore interface
func (m *MockBlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Blogs, m.Err
}

// GetByID implements the store.BlogStore interface
func (m *MockBlogStore) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	m.mu.Lock()
	m.GetByIDCalls++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Blog, m.Err
}

// TotalCalls reports the number of store operations invoked across all
// methods.
func (m *MockBlogStore) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls + m.UpdateCalls + m.ListCalls + m.GetByIDCalls
}
