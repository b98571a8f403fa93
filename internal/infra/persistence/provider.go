// Package persistence selects the document store backing the catalog.
package persistence

import (
	"context"
	"log/slog"

	"mallconsole/config"
	"mallconsole/internal/domain/constants"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/errors"
	"mallconsole/internal/infra/persistence/firestore"
	"mallconsole/internal/infra/persistence/memory"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the DocumentStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	App    *firebase.App
	Logger *slog.Logger
}

// NewDocumentStore creates the DocumentStore named by store.provider.
func NewDocumentStore(params StoreParams) (repository.DocumentStore, error) {
	provider := params.Config.Store.Provider
	logger := params.Logger

	switch provider {
	case constants.StoreProviderMemory:
		logger.Info("Using in-memory document store")
		store := memory.NewDocumentStore()
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})

		return store, nil

	case constants.StoreProviderFirestore:
		client, err := params.App.Firestore(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firestore client")
		}
		logger.Info("Using Firestore document store")
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("Closing Firestore client")

				return client.Close()
			},
		})

		return firestore.NewDocumentStore(client), nil

	default:
		return nil, errors.Errorf("unknown store provider: %s", provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDocumentStore),
)
