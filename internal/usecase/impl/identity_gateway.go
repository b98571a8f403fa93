package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "mallconsole/internal/delivery/context"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/errors"
	"mallconsole/internal/usecase"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the identity gateways, injected by Fx.
type GatewayParams struct {
	fx.In

	Provider service.IdentityProvider
	Store    repository.DocumentStore
	Logger   *slog.Logger
}

type gatewayFactory struct {
	params GatewayParams
}

// NewIdentityGatewayFactory returns the factory used to give each console session its own gateway
func NewIdentityGatewayFactory(params GatewayParams) usecase.IdentityGatewayFactory {
	return &gatewayFactory{params: params}
}

// NewGateway creates a signed-out gateway
func (f *gatewayFactory) NewGateway() usecase.IdentityGateway {
	return NewGateway(f.params)
}

type listenerEntry struct {
	id       int
	listener usecase.IdentityListener
}

type gateway struct {
	provider service.IdentityProvider
	store    repository.DocumentStore
	logger   *slog.Logger

	mu        sync.Mutex
	identity  *entity.Identity
	role      entity.Role
	listeners []listenerEntry
	nextID    int
}

// NewGateway creates an identity gateway with an empty cache
func NewGateway(params GatewayParams) usecase.IdentityGateway {
	return &gateway{
		provider: params.Provider,
		store:    params.Store,
		logger:   params.Logger,
	}
}

func (g *gateway) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// SignUp creates the credential and writes the role side record. Role defaults to user.
func (g *gateway) SignUp(ctx context.Context, email, password string, role entity.Role) (*entity.Identity, error) {
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domainerrors.NewValidationError("Role must be user or admin")
	}

	email = strings.TrimSpace(email)
	g.log(ctx).Info("Starting registration", slog.String("email", email), slog.String("role", role.String()))

	identity, err := g.provider.SignUp(ctx, email, password)
	if err != nil {
		g.log(ctx).Warn("Registration rejected", slog.String("email", email), slog.Any("error", err))

		return nil, asAuthError(err)
	}

	record := map[string]any{
		entity.UserFieldEmail:     identity.Email,
		entity.UserFieldRole:      role.String(),
		entity.UserFieldCreatedAt: repository.ServerTimestamp,
	}
	if err := g.store.Set(ctx, repository.CollectionUsers, identity.UID, record); err != nil {
		g.log(ctx).Error("Failed to write role record", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, domainerrors.NewRemoteError(err)
	}

	g.log(ctx).Debug("Registration completed", slog.String("uid", identity.UID))

	return identity, nil
}

// SignIn authenticates, resolves the role and notifies the listeners
func (g *gateway) SignIn(ctx context.Context, email, password string) (*entity.Identity, entity.Role, error) {
	email = strings.TrimSpace(email)

	identity, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		g.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, "", asAuthError(err)
	}

	role := g.resolveRole(ctx, identity.UID)

	g.mu.Lock()
	g.identity = identity
	g.role = role
	g.mu.Unlock()

	g.log(ctx).Info("Signed in", slog.String("uid", identity.UID), slog.String("role", role.String()))
	g.notify(ctx, identity, role)

	return identity, role, nil
}

// SignOut revokes the provider sessions. On failure the cached identity is kept.
func (g *gateway) SignOut(ctx context.Context) error {
	g.mu.Lock()
	identity := g.identity
	g.mu.Unlock()

	if identity == nil {
		return nil
	}

	if err := g.provider.RevokeSessions(ctx, identity.UID); err != nil {
		g.log(ctx).Warn("Sign-out failed", slog.String("uid", identity.UID), slog.Any("error", err))

		return asAuthError(err)
	}

	g.mu.Lock()
	g.identity = nil
	g.role = ""
	g.mu.Unlock()

	g.log(ctx).Info("Signed out", slog.String("uid", identity.UID))
	g.notify(ctx, nil, "")

	return nil
}

// Current returns the cached identity and role
func (g *gateway) Current() (*entity.Identity, entity.Role) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.identity == nil {
		return nil, ""
	}
	identity := *g.identity

	return &identity, g.role
}

// Subscribe registers a listener, invoked after the ones registered before it
func (g *gateway) Subscribe(listener usecase.IdentityListener) func() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID++
	id := g.nextID
	g.listeners = append(g.listeners, listenerEntry{id: id, listener: listener})

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		for i, entry := range g.listeners {
			if entry.id == id {
				g.listeners = append(g.listeners[:i:i], g.listeners[i+1:]...)

				return
			}
		}
	}
}

func (g *gateway) notify(ctx context.Context, identity *entity.Identity, role entity.Role) {
	g.mu.Lock()
	listeners := make([]listenerEntry, len(g.listeners))
	copy(listeners, g.listeners)
	g.mu.Unlock()

	for _, entry := range listeners {
		entry.listener(ctx, identity, role)
	}
}

// resolveRole reads the side record. A missing or unreadable record resolves to user.
func (g *gateway) resolveRole(ctx context.Context, uid string) entity.Role {
	doc, err := g.store.Get(ctx, repository.CollectionUsers, uid)
	if err != nil {
		if !errors.Is(err, repository.ErrDocumentNotFound) {
			g.log(ctx).Warn("Failed to read role record, defaulting to user", slog.String("uid", uid), slog.Any("error", err))
		}

		return entity.RoleUser
	}

	raw, _ := doc.Fields[entity.UserFieldRole].(string)
	if role := entity.Role(raw); role.IsValid() {
		return role
	}

	return entity.RoleUser
}

func asAuthError(err error) error {
	if authErr, ok := errors.AsType[*domainerrors.AuthError](err); ok {
		return authErr
	}

	return domainerrors.NewAuthError(domainerrors.AuthReasonOther, err.Error(), err)
}
