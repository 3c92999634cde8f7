package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenPayload captures the data available when minting a token.
type SessionTokenPayload struct {
	UserID uuid.UUID
	Email  string
}

// SessionTokenClaims is the typed JWT issued to clients. Sessions are
// stateless: the claims alone identify the caller, no store lookup involved.
type SessionTokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
