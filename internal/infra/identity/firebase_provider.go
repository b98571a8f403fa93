package identity

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"mallconsole/config"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/errors"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// tokenAuthority is the part of the Admin SDK auth client the provider relies on.
type tokenAuthority interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

var _ service.IdentityProvider = (*firebaseProvider)(nil)

type firebaseProvider struct {
	relyingParty *identitytoolkit.RelyingpartyService
	authority    tokenAuthority
	logger       *slog.Logger
}

func newFirebaseProvider(
	ctx context.Context,
	cfg *config.FirebaseConfig,
	authority tokenAuthority,
	logger *slog.Logger,
) (*firebaseProvider, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.IdentityEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.IdentityEndpoint))
	}

	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &firebaseProvider{
		relyingParty: svc.Relyingparty,
		authority:    authority,
		logger:       logger,
	}, nil
}

// SignUp creates an email/password account.
func (p *firebaseProvider) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	resp, err := p.relyingParty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapProviderError(err)
	}

	return &entity.Identity{UID: resp.LocalId, Email: resp.Email}, nil
}

// SignIn verifies the password, then checks the issued ID token with the Admin SDK.
func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	resp, err := p.relyingParty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapProviderError(err)
	}

	uid := resp.LocalId
	if resp.IdToken != "" && p.authority != nil {
		token, err := p.authority.VerifyIDToken(ctx, resp.IdToken)
		if err != nil {
			return nil, domainerrors.NewAuthError(domainerrors.AuthReasonOther, "", errors.Wrap(err, "verify id token"))
		}
		uid = token.UID
	}

	return &entity.Identity{UID: uid, Email: resp.Email}, nil
}

// RevokeSessions invalidates the refresh tokens of uid.
func (p *firebaseProvider) RevokeSessions(ctx context.Context, uid string) error {
	if p.authority == nil {
		return nil
	}
	if err := p.authority.RevokeRefreshTokens(ctx, uid); err != nil {
		return mapProviderError(err)
	}

	return nil
}

// mapProviderError turns Identity Toolkit and transport failures into AuthErrors.
func mapProviderError(err error) error {
	if apiErr, ok := errors.AsType[*googleapi.Error](err); ok {
		return domainerrors.NewAuthError(reasonForCode(apiErr.Message, apiErr.Code), apiErr.Message, err)
	}

	if _, ok := errors.AsType[net.Error](err); ok {
		return domainerrors.NewAuthError(domainerrors.AuthReasonNetwork, err.Error(), err)
	}

	return domainerrors.NewAuthError(domainerrors.AuthReasonOther, err.Error(), err)
}

// reasonForCode classifies an Identity Toolkit error message such as
// "WEAK_PASSWORD : Password should be at least 6 characters".
func reasonForCode(message string, status int) domainerrors.AuthReason {
	code, _, _ := strings.Cut(message, " ")
	switch code {
	case "EMAIL_NOT_FOUND", "USER_NOT_FOUND":
		return domainerrors.AuthReasonUnknownAccount
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return domainerrors.AuthReasonWrongCredential
	case "EMAIL_EXISTS":
		return domainerrors.AuthReasonDuplicateAccount
	case "WEAK_PASSWORD":
		return domainerrors.AuthReasonWeakCredential
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return domainerrors.AuthReasonMalformedEmail
	}
	if status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout {
		return domainerrors.AuthReasonNetwork
	}

	return domainerrors.AuthReasonOther
}
