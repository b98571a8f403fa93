// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"mallconsole/config"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "mall-console"

// jwtService signs the session cookie with HS256.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}, nil
}

// IssueSessionToken creates a token naming the console session.
func (s *jwtService) IssueSessionToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session id is required")
	}

	now := s.now()
	claims := service.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// ValidateSessionToken checks signature, issuer and expiry.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}
	if claims.SessionID == "" {
		return nil, errors.New("session token carries no session id")
	}

	return claims, nil
}

// SessionDuration returns the configured lifetime of a session token.
func (s *jwtService) SessionDuration() time.Duration {
	return s.ttl
}
