// Package identity implements the email/password identity providers: Firebase
// Authentication in deployed environments and a document store backed one for
// local development.
package identity

import (
	"context"
	"log/slog"

	"mallconsole/config"
	"mallconsole/internal/domain/constants"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/errors"
	firebaseinfra "mallconsole/internal/infra/firebase"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the identity provider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	App    *firebase.App
	Store  repository.DocumentStore
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// NewProvider creates the provider named by identity.provider.
func NewProvider(params ProviderParams) (service.IdentityProvider, error) {
	provider := params.Config.Identity.Provider

	switch provider {
	case constants.IdentityProviderLocal:
		params.Logger.Warn("Using local identity provider; credentials live in the document store")

		return newLocalProvider(params.Store, params.Hasher, params.Config.Identity.MinPasswordLength, params.Logger), nil

	case constants.IdentityProviderFirebase:
		cfg := params.Config.Firebase
		if cfg == nil || cfg.APIKey == "" {
			return nil, errors.New("firebase api key is required for email/password sign-in")
		}
		authClient, err := firebaseinfra.NewAuthClient(params.Ctx, params.App)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Firebase identity provider")

		// Credentials are checked with the web API key; sessions are verified
		// and revoked with the Admin SDK.
		return newFirebaseProvider(params.Ctx, cfg, authClient, params.Logger)

	default:
		return nil, errors.Errorf("unknown identity provider: %s", provider)
	}
}
