package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a signed token.
// Access tokens carry id + username; refresh tokens carry id only.
type TokenClaims struct {
	jwt.RegisteredClaims
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
}
