package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlog(t *testing.T) {
	t.Parallel()

	t.Run("valid blog", func(t *testing.T) {
		blog, err := NewBlog("Title", "Content", 7)
		require.NoError(t, err)
		assert.Zero(t, blog.ID, "ID is assigned by the store, not here")
		assert.Equal(t, "Title", blog.Title)
		assert.Equal(t, "Content", blog.Content)
		assert.EqualValues(t, 7, blog.AuthorID)
		assert.False(t, blog.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		title    string
		content  string
		authorID int64
		wantErr  error
	}{
		{"empty title", "", "Content", 7, ErrEmptyBlogTitle},
		{"empty content", "Title", "", 7, ErrEmptyBlogContent},
		{"zero author", "Title", "Content", 0, ErrInvalidBlogAuthor},
		{"negative author", "Title", "Content", -1, ErrInvalidBlogAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBlog(tt.title, tt.content, tt.authorID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
