// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"mallconsole/internal/domain/entity"
)

// IdentityProvider is the external authentication backend.
// Rejections are returned as *errors.AuthError from the domain errors package.
type IdentityProvider interface {
	// SignUp creates an email/password credential.
	SignUp(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignIn verifies an email/password credential.
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)

	// RevokeSessions invalidates every provider session of uid.
	RevokeSessions(ctx context.Context, uid string) error
}
