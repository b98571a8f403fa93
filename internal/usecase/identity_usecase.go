package usecase

import (
	"context"

	"mallconsole/internal/domain/entity"
)

// IdentityListener is notified on every identity transition. A nil identity means signed out.
type IdentityListener func(ctx context.Context, identity *entity.Identity, role entity.Role)

// IdentityGateway wraps the identity provider for one console session
type IdentityGateway interface {
	// SignUp creates an account and its role record. It does not sign the session in.
	SignUp(ctx context.Context, email, password string, role entity.Role) (*entity.Identity, error)

	// SignIn authenticates and resolves the role of the account
	SignIn(ctx context.Context, email, password string) (*entity.Identity, entity.Role, error)

	// SignOut revokes the provider sessions and clears the cached identity
	SignOut(ctx context.Context) error

	// Current returns the cached identity and role, nil when signed out
	Current() (*entity.Identity, entity.Role)

	// Subscribe registers a listener and returns a function removing it
	Subscribe(listener IdentityListener) (unsubscribe func())
}

// IdentityGatewayFactory creates the gateway owned by a new console session
type IdentityGatewayFactory interface {
	NewGateway() IdentityGateway
}
