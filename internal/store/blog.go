package store

import (
	"context"

	"github.com/draca/medium-api/internal/domain"
)

// BlogStore defines the interface for blog post persistence.
type BlogStore interface {
	// Create saves a new blog post to the store. The database assigns the
	// ID, which is written back into the entity before returning.
	// Returns validation errors from the domain Blog if data is invalid.
	Create(ctx context.Context, blog *domain.Blog) error

	// Update changes the title and content of the post matching id and
	// returns the updated post. The author is never modified by updates.
	// Returns ErrBlogNotFound if no such post exists.
	Update(ctx context.Context, id int64, title, content string) (*domain.Blog, error)

	// List retrieves every blog post in the store. Order follows the
	// store's default; the caller must not rely on it.
	List(ctx context.Context) ([]*domain.Blog, error)

	// GetByID retrieves a blog post by its unique ID.
	// Returns ErrBlogNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Blog, error)
}
