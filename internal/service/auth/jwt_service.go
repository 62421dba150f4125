package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies the provided token string and extracts its
	// claims. Returns ErrExpiredToken for expired tokens; every other
	// failure mode (malformed token, bad signature, wrong algorithm,
	// non-numeric user claim) is collapsed into ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified content of an authentication token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
