package service

import (
	"github.com/google/uuid"
)

// TokenClaims carries the authenticated identity extracted from a token.
type TokenClaims struct {
	UserID   uuid.UUID
	UserType string
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(userID uuid.UUID, userType string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)
}
