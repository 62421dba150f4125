package api

import "github.com/draca/medium-api/internal/domain"

// Common request/response structures

// CreateBlogRequest defines the payload for creating a blog post.
// Extra fields in the body are ignored; missing required fields fail
// validation.
type CreateBlogRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateBlogRequest defines the payload for updating a blog post.
// Only title and content are writable; authorship is fixed at creation.
type UpdateBlogRequest struct {
	ID      int64  `json:"id"      validate:"required"`
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// BlogMutationResponse is the body for successful create/update requests.
type BlogMutationResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// BlogListResponse is the body for the bulk listing endpoint.
type BlogListResponse struct {
	Blogs []*domain.Blog `json:"blogs"`
}

// BlogResponse is the body for the single-post endpoint. Blog is null
// when no post matches the requested ID.
type BlogResponse struct {
	Blog *domain.Blog `json:"blog"`
}

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SigninRequest defines the payload for the user signin endpoint.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse is the body for successful signup/signin requests.
type AuthResponse struct {
	Jwt string `json:"jwt"`
}
