package console

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mallconsole/config"
	"mallconsole/internal/usecase"
	"mallconsole/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// Registry keeps the live sessions keyed by the id stored in the session cookie.
// Sessions idle for longer than the configured TTL are evicted.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry

	ttl            time.Duration
	gatewayFactory usecase.IdentityGatewayFactory
	catalog        Catalog
	logger         *slog.Logger
	now            func() time.Time
}

// RegistryParams holds dependencies for Registry, injected by Fx
type RegistryParams struct {
	fx.In

	Lc             fx.Lifecycle
	GatewayFactory usecase.IdentityGatewayFactory
	Catalog        Catalog
	Config         *config.Config
	Logger         *slog.Logger
}

// NewRegistry creates the session registry and starts the idle-session sweeper.
func NewRegistry(params RegistryParams) *Registry {
	r := newRegistry(params.GatewayFactory, params.Catalog, params.Config.Session.TTL, params.Logger, time.Now)

	done := make(chan struct{})
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.logger.Info("Session registry started", slog.String("ttl", util.FormatDuration(r.ttl)))
			go r.sweepLoop(done)

			return nil
		},
		OnStop: func(context.Context) error {
			close(done)
			r.closeAll()

			return nil
		},
	})

	return r
}

func newRegistry(
	factory usecase.IdentityGatewayFactory,
	catalog Catalog,
	ttl time.Duration,
	logger *slog.Logger,
	now func() time.Time,
) *Registry {
	return &Registry{
		sessions:       make(map[string]*registryEntry),
		ttl:            ttl,
		gatewayFactory: factory,
		catalog:        catalog,
		logger:         logger,
		now:            now,
	}
}

// Create starts a new signed-out session with a fresh identity gateway.
func (r *Registry) Create() *Session {
	session := NewSession(uuid.New().String(), r.gatewayFactory.NewGateway(), r.catalog, r.logger)

	r.mu.Lock()
	r.sessions[session.ID()] = &registryEntry{session: session, lastSeen: r.now()}
	r.mu.Unlock()

	return session
}

// Lookup returns the session with id and marks it as seen.
// Expired sessions are removed and reported as missing.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, false
	}

	now := r.now()
	if r.expired(entry, now) {
		delete(r.sessions, id)
		entry.session.Close()

		return nil, false
	}
	entry.lastSeen = now

	return entry.session, true
}

// Remove drops a session, typically after sign-out.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	entry, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		entry.session.Close()
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Sweep evicts every expired session and returns how many were removed.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var stale []*Session
	for id, entry := range r.sessions {
		if r.expired(entry, now) {
			stale = append(stale, entry.session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, session := range stale {
		session.Close()
	}

	return len(stale)
}

// TTL returns the idle lifetime of a session.
func (r *Registry) TTL() time.Duration {
	return r.ttl
}

func (r *Registry) expired(entry *registryEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(entry.lastSeen) > r.ttl
}

func (r *Registry) sweepLoop(done <-chan struct{}) {
	interval := r.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				r.logger.Debug("Evicted idle sessions", slog.Int("count", removed))
			}
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, entry := range r.sessions {
		entry.session.Close()
		delete(r.sessions, id)
	}
}
