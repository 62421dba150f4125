package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draca/medium-api/internal/service/auth"
	"github.com/draca/medium-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusForbidden},
		{"expired token", auth.ErrExpiredToken, http.StatusForbidden},
		{"blog not found", store.ErrBlogNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("fetch: %w", store.ErrBlogNotFound), http.StatusNotFound},
		{"duplicate email", store.ErrEmailExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"auth error", auth.ErrExpiredToken, "You are not logged in"},
		{"blog not found", store.ErrBlogNotFound, "Blog post not found"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"raw driver error stays hidden", fmt.Errorf("pq: connection refused"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}
