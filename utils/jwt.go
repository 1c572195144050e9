package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the payload of the admin session cookie.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminID returns the admin the session was issued to.
func (c *SessionClaims) AdminID() string {
	return c.Subject
}

// GenerateSessionToken signs a session for adminID valid for ttl.
func GenerateSessionToken(secret []byte, adminID, role string, ttl time.Duration) (string, *SessionClaims, error) {
	if len(secret) == 0 {
		return "", nil, errors.New("session secret is not set")
	}

	now := time.Now()
	claims := &SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// VerifySessionToken checks signature and expiry and returns the claims.
func VerifySessionToken(secret []byte, tokenStr string) (*SessionClaims, error) {
	if len(secret) == 0 {
		return nil, errors.New("session secret is not set")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.Subject != "" {
		return claims, nil
	}

	return nil, errors.New("invalid session token")
}
