package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/draca/medium-api/internal/api/shared"
	"github.com/draca/medium-api/internal/domain"
	"github.com/draca/medium-api/internal/store"
)

// invalidBlogInputMessage is returned for shape failures on both write
// paths. The text is shared between create and update on purpose; it is
// part of the observed contract.
const invalidBlogInputMessage = "Create Blog Inputs are not correct"

// BlogHandler handles blog-related HTTP requests. Every route it serves
// sits behind the auth middleware, which guarantees a user ID in the
// request context.
type BlogHandler struct {
	blogStore store.BlogStore
	validator *validator.Validate
}

// NewBlogHandler creates a new BlogHandler with the given dependencies.
func NewBlogHandler(blogStore store.BlogStore) *BlogHandler {
	return &BlogHandler{
		blogStore: blogStore,
		validator: validator.New(),
	}
}

// Create handles POST / requests. The author is the authenticated caller;
// the payload carries only title and content.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusForbidden, shared.NotLoggedInMessage)
		return
	}

	var req CreateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, invalidBlogInputMessage)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, invalidBlogInputMessage)
		return
	}

	blog, err := domain.NewBlog(req.Title, req.Content, userID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, invalidBlogInputMessage)
		return
	}

	if err := h.blogStore.Create(r.Context(), blog); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogMutationResponse{
		Message: "Blog post created successfully",
		ID:      blog.ID,
	})
}

// Update handles PUT / requests. Only title and content change; the
// author set at creation is never re-checked or re-written.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, invalidBlogInputMessage)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, invalidBlogInputMessage)
		return
	}

	blog, err := h.blogStore.Update(r.Context(), req.ID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Blog post not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogMutationResponse{
		Message: "Blog post updated successfully",
		ID:      blog.ID,
	})
}

// List handles GET /bulk requests. Returns every stored post; order is
// whatever the store produced.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to fetch blog posts", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogListResponse{Blogs: blogs})
}

// GetByID handles GET /{id} requests. An unknown ID is not an error:
// the response is 200 with a null blog, matching the store gateway's
// null-returning lookup contract.
func (h *BlogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid blog post id")
		return
	}

	blog, err := h.blogStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, BlogResponse{Blog: nil})
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Error while fetching blog post", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BlogResponse{Blog: blog})
}
