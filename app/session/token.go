package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims this client reads out of a backend access
// token. The token is issued and verified by the backend; the client only
// decodes it for bookkeeping (subject, email, expiry), so no signature
// check happens here.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ParseAccessToken decodes the claims from an access token without
// verifying its signature.
func ParseAccessToken(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the token's expiry has passed at now. Tokens
// without an expiry never expire.
func (c *TokenClaims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(c.ExpiresAt.Time)
}
