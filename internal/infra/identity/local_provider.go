package identity

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// collectionCredentials holds the local password records keyed by lowercased email.
const collectionCredentials = "credentials"

const (
	credentialFieldUID          = "uid"
	credentialFieldEmail        = "email"
	credentialFieldPasswordHash = "passwordHash"
	credentialFieldRevokedAt    = "sessionsRevokedAt"
)

var _ service.IdentityProvider = (*localProvider)(nil)

// localProvider keeps email/password credentials in the document store.
// It backs development setups that run without a Firebase project.
type localProvider struct {
	mu          sync.Mutex
	store       repository.DocumentStore
	hasher      service.PasswordHasher
	validate    *validator.Validate
	minPassword int
	logger      *slog.Logger
}

func newLocalProvider(
	store repository.DocumentStore,
	hasher service.PasswordHasher,
	minPassword int,
	logger *slog.Logger,
) *localProvider {
	return &localProvider{
		store:       store,
		hasher:      hasher,
		validate:    validator.New(),
		minPassword: minPassword,
		logger:      logger,
	}
}

// SignUp stores a hashed credential under a fresh uid.
func (p *localProvider) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	email = strings.TrimSpace(email)
	if err := p.validate.Var(email, "required,email"); err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.AuthReasonMalformedEmail, "", err)
	}
	if len(password) < p.minPassword {
		return nil, domainerrors.NewAuthError(domainerrors.AuthReasonWeakCredential, "", nil)
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.AuthReasonWeakCredential, "", err)
	}

	key := credentialKey(email)

	p.mu.Lock()
	defer p.mu.Unlock()

	_, err = p.store.Get(ctx, collectionCredentials, key)
	switch {
	case err == nil:
		return nil, domainerrors.NewAuthError(domainerrors.AuthReasonDuplicateAccount, "", nil)
	case !errors.Is(err, repository.ErrDocumentNotFound):
		return nil, domainerrors.NewRemoteError(err)
	}

	identity := &entity.Identity{UID: uuid.New().String(), Email: email}
	if err := p.store.Set(ctx, collectionCredentials, key, map[string]any{
		credentialFieldUID:          identity.UID,
		credentialFieldEmail:        identity.Email,
		credentialFieldPasswordHash: hash,
	}); err != nil {
		return nil, domainerrors.NewRemoteError(err)
	}

	p.logger.Debug("Local credential created", slog.String("uid", identity.UID))

	return identity, nil
}

// SignIn checks the password against the stored hash.
func (p *localProvider) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	email = strings.TrimSpace(email)

	doc, err := p.store.Get(ctx, collectionCredentials, credentialKey(email))
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.NewAuthError(domainerrors.AuthReasonUnknownAccount, "", err)
		}

		return nil, domainerrors.NewRemoteError(err)
	}

	hash, _ := doc.Fields[credentialFieldPasswordHash].(string)
	if !p.hasher.Check(password, hash) {
		return nil, domainerrors.NewAuthError(domainerrors.AuthReasonWrongCredential, "", nil)
	}

	uid, _ := doc.Fields[credentialFieldUID].(string)
	stored, _ := doc.Fields[credentialFieldEmail].(string)

	return &entity.Identity{UID: uid, Email: stored}, nil
}

// RevokeSessions stamps the revocation time on the role record of uid.
func (p *localProvider) RevokeSessions(ctx context.Context, uid string) error {
	err := p.store.Update(ctx, repository.CollectionUsers, uid, map[string]any{
		credentialFieldRevokedAt: repository.ServerTimestamp,
	})
	if err != nil && !errors.Is(err, repository.ErrDocumentNotFound) {
		return domainerrors.NewRemoteError(err)
	}

	return nil
}

func credentialKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
