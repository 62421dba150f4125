package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/draca/medium-api/internal/domain"
	"github.com/draca/medium-api/internal/platform/logger"
	"github.com/draca/medium-api/internal/store"
)

// PostgresBlogStore implements the store.BlogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBlogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBlogStore creates a new PostgreSQL implementation of the
// BlogStore interface. It accepts a database connection or transaction
// that is initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewPostgresBlogStore(db store.DBTX, logger *slog.Logger) *PostgresBlogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBlogStore{
		db:     db,
		logger: logger.With(slog.String("component", "blog_store")),
	}
}

// Ensure PostgresBlogStore implements store.BlogStore interface
var _ store.BlogStore = (*PostgresBlogStore)(nil)

// Create implements store.BlogStore.Create.
// It inserts a new blog post and writes the assigned ID back into the
// entity. Returns store.ErrInvalidEntity if the author does not exist
// (foreign key violation).
func (s *PostgresBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := blog.Validate(); err != nil {
		log.Warn("blog validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO blogs (title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		blog.Title,
		blog.Content,
		blog.AuthorID,
		blog.CreatedAt,
		blog.UpdatedAt,
	).Scan(&blog.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during blog creation",
				slog.String("error", err.Error()),
				slog.Int64("author_id", blog.AuthorID))
			return fmt.Errorf("%w: author with ID %d not found",
				store.ErrInvalidEntity, blog.AuthorID)
		}

		log.Error("failed to create blog",
			slog.String("error", err.Error()),
			slog.Int64("author_id", blog.AuthorID))
		return MapError(err)
	}

	log.Info("blog created successfully",
		slog.Int64("blog_id", blog.ID),
		slog.Int64("author_id", blog.AuthorID))
	return nil
}

// Update implements store.BlogStore.Update.
// It changes title and content only; the author column is deliberately
// absent from the statement, so authorship can never be mutated here.
// Returns store.ErrBlogNotFound if the post does not exist.
func (s *PostgresBlogStore) Update(ctx context.Context, id int64, title, content string) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE blogs
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, title, content, author_id, created_at, updated_at
	`

	var blog domain.Blog
	err := s.db.QueryRowContext(ctx, query, title, content, time.Now().UTC(), id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.AuthorID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("blog not found during update", slog.Int64("blog_id", id))
			return nil, store.ErrBlogNotFound
		}
		log.Error("failed to update blog",
			slog.String("error", err.Error()),
			slog.Int64("blog_id", id))
		return nil, MapError(err)
	}

	log.Info("blog updated successfully", slog.Int64("blog_id", id))
	return &blog, nil
}

// List implements store.BlogStore.List.
// Returns every stored blog post; an empty slice when there are none.
func (s *PostgresBlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM blogs
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list blogs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	blogs := []*domain.Blog{}
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Content,
			&blog.AuthorID,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		); err != nil {
			log.Error("failed to scan blog row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		blogs = append(blogs, &blog)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating blog rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("blogs listed successfully", slog.Int("count", len(blogs)))
	return blogs, nil
}

// GetByID implements store.BlogStore.GetByID.
// Returns store.ErrBlogNotFound if the post does not exist.
func (s *PostgresBlogStore) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`

	var blog domain.Blog
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.AuthorID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("blog not found", slog.Int64("blog_id", id))
			return nil, store.ErrBlogNotFound
		}
		log.Error("failed to get blog by ID",
			slog.String("error", err.Error()),
			slog.Int64("blog_id", id))
		return nil, MapError(err)
	}

	return &blog, nil
}
