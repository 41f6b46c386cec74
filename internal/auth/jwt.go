// Package auth implements credential verification and access token handling.
package auth

import (
	"time"

	"github.com/born2vin/hoskote-backend/errors"
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims embedded in issued access tokens.
type AccessClaims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer creates and validates HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer returns a TokenIssuer signing with the given secret.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs a new access token for the given user.
func (t *TokenIssuer) Issue(userID, username string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, errors.ServerError, "Failed to sign access token")
	}
	return signed, nil
}

// Validate parses and verifies a token, returning the authenticated user ID.
func (t *TokenIssuer) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Unauthorized("invalid_token", "Unexpected signing method")
			}
			return t.secret, nil
		})

	if err != nil || !token.Valid {
		return "", errors.Unauthorized("invalid_token", "Invalid or expired token")
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || claims.Subject == "" {
		return "", errors.Unauthorized("invalid_claims", "Invalid token structure")
	}

	return claims.Subject, nil
}
