package identity

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mallconsole/config"
	"mallconsole/internal/domain/constants"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/errors"
	"mallconsole/internal/infra/auth"
	"mallconsole/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestLocalProvider(t *testing.T) (*localProvider, *memory.DocumentStore) {
	store := memory.NewDocumentStore()
	t.Cleanup(func() { _ = store.Close() })

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	return newLocalProvider(store, hasher, 6, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func authReason(t *testing.T, err error) domainerrors.AuthReason {
	t.Helper()

	authErr, ok := errors.AsType[*domainerrors.AuthError](err)
	require.True(t, ok, "want *AuthError, got %v", err)

	return authErr.Reason
}

func TestLocalProvider_SignUpThenSignIn(t *testing.T) {
	provider, store := newTestLocalProvider(t)
	ctx := context.Background()

	created, err := provider.SignUp(ctx, " Staff@Mall.test ", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)
	assert.Equal(t, "Staff@Mall.test", created.Email)

	doc, err := store.Get(ctx, collectionCredentials, "staff@mall.test")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", doc.Fields[credentialFieldPasswordHash])

	signedIn, err := provider.SignIn(ctx, "staff@mall.test", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.UID, signedIn.UID)
}

func TestLocalProvider_Rejections(t *testing.T) {
	provider, _ := newTestLocalProvider(t)
	ctx := context.Background()

	_, err := provider.SignUp(ctx, "staff@mall.test", "secret1")
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		want domainerrors.AuthReason
	}{
		{
			name: "duplicate email",
			call: func() error { _, err := provider.SignUp(ctx, "STAFF@mall.test", "another1"); return err },
			want: domainerrors.AuthReasonDuplicateAccount,
		},
		{
			name: "malformed email",
			call: func() error { _, err := provider.SignUp(ctx, "not-an-email", "secret1"); return err },
			want: domainerrors.AuthReasonMalformedEmail,
		},
		{
			name: "short password",
			call: func() error { _, err := provider.SignUp(ctx, "new@mall.test", "abc"); return err },
			want: domainerrors.AuthReasonWeakCredential,
		},
		{
			name: "unknown account",
			call: func() error { _, err := provider.SignIn(ctx, "nobody@mall.test", "secret1"); return err },
			want: domainerrors.AuthReasonUnknownAccount,
		},
		{
			name: "wrong password",
			call: func() error { _, err := provider.SignIn(ctx, "staff@mall.test", "wrong-pw"); return err },
			want: domainerrors.AuthReasonWrongCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authReason(t, tt.call()))
		})
	}
}

func TestLocalProvider_RevokeSessions(t *testing.T) {
	provider, store := newTestLocalProvider(t)
	ctx := context.Background()

	require.NoError(t, provider.RevokeSessions(ctx, "missing-uid"))

	require.NoError(t, store.Set(ctx, repository.CollectionUsers, "uid-1", map[string]any{"role": "user"}))
	require.NoError(t, provider.RevokeSessions(ctx, "uid-1"))

	doc, err := store.Get(ctx, repository.CollectionUsers, "uid-1")
	require.NoError(t, err)
	assert.Contains(t, doc.Fields, credentialFieldRevokedAt)
	assert.Equal(t, "user", doc.Fields["role"])
}

func TestNewProvider_Selection(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewDocumentStore()
	t.Cleanup(func() { _ = store.Close() })

	params := ProviderParams{
		Ctx: context.Background(),
		Config: &config.Config{
			Identity: &config.IdentityConfig{Provider: constants.IdentityProviderLocal, MinPasswordLength: 6},
		},
		Store:  store,
		Hasher: auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Logger: logger,
	}

	provider, err := NewProvider(params)
	require.NoError(t, err)
	assert.IsType(t, &localProvider{}, provider)

	params.Config.Identity.Provider = constants.IdentityProviderFirebase
	_, err = NewProvider(params)
	assert.ErrorContains(t, err, "api key")

	params.Config.Identity.Provider = "ldap"
	_, err = NewProvider(params)
	assert.ErrorContains(t, err, "unknown identity provider")
}
