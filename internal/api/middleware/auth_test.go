package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draca/medium-api/internal/mocks"
	"github.com/draca/medium-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	const userID int64 = 7

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID int64
	}{
		{
			name:           "valid token",
			authHeader:     "valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			validateErr:    auth.ErrMissingToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "expired token",
			authHeader:     "expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid token",
			authHeader:     "invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			middleware := NewAuthMiddleware(jwtService)

			var handlerInvoked bool
			var capturedUserID int64
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerInvoked = true
				if id, ok := GetUserID(r); ok {
					capturedUserID = id
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.True(t, handlerInvoked)
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			} else {
				assert.False(t, handlerInvoked, "wrapped handler must not run on auth failure")

				var body map[string]string
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, "You are not logged in", body["message"])
			}
		})
	}
}

// All auth failure modes must be indistinguishable: same status, same body.
func TestAuthMiddleware_UniformFailureResponse(t *testing.T) {
	t.Parallel()

	failures := []error{auth.ErrMissingToken, auth.ErrInvalidToken, auth.ErrExpiredToken}

	var bodies []string
	for _, failure := range failures {
		middleware := NewAuthMiddleware(&mocks.MockJWTService{ValidateErr: failure})

		req := httptest.NewRequest("GET", "/", nil)
		recorder := httptest.NewRecorder()
		middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be invoked")
		})).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		bodies = append(bodies, recorder.Body.String())
	}

	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i])
	}
}

// The token is passed to the verifier verbatim; no scheme stripping.
func TestAuthMiddleware_RawHeaderValue(t *testing.T) {
	t.Parallel()

	var receivedToken string
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			receivedToken = token
			return &auth.Claims{UserID: 1}, nil
		},
	}

	middleware := NewAuthMiddleware(jwtService)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	recorder := httptest.NewRecorder()

	middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(recorder, req)

	assert.Equal(t, "Bearer some-token", receivedToken,
		"header value must reach the verifier unmodified")
}
