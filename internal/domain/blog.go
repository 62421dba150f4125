package domain

import (
	"errors"
	"time"
)

// Common validation errors for Blog
var (
	ErrEmptyBlogTitle    = errors.New("blog title cannot be empty")
	ErrEmptyBlogContent  = errors.New("blog content cannot be empty")
	ErrInvalidBlogAuthor = errors.New("blog author ID must be positive")
)

// Blog represents a single blog post. The ID is assigned by the database
// on insert and is immutable afterwards. AuthorID is set once at creation
// and is never changed by updates.
type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"authorId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBlog creates a new Blog with the given title, content and author.
// The ID is left zero until the store assigns one.
// Returns an error if validation fails.
func NewBlog(title, content string, authorID int64) (*Blog, error) {
	blog := &Blog{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}

	return blog, nil
}

// Validate checks that the blog data meets domain requirements.
func (b *Blog) Validate() error {
	if b.Title == "" {
		return ErrEmptyBlogTitle
	}
	if b.Content == "" {
		return ErrEmptyBlogContent
	}
	if b.AuthorID <= 0 {
		return ErrInvalidBlogAuthor
	}
	return nil
}
