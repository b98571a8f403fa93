package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the custom claims of the console session cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and validates the console session cookie.
type SessionTokenService interface {
	// IssueSessionToken creates a signed token for a console session id.
	IssueSessionToken(sessionID string) (string, error)

	// ValidateSessionToken checks the token and returns its claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// SessionDuration returns how long an issued token stays valid.
	SessionDuration() time.Duration
}
