package auth

import (
	"testing"
	"time"

	"mallconsole/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Session: &config.SessionConfig{TTL: ttl}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := svc.IssueSessionToken("sess-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "sess-1", claims.Subject)
	assert.Equal(t, time.Hour, svc.SessionDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret-a", time.Hour))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("secret-b", time.Hour))
	require.NoError(t, err)

	foreign, err := other.IssueSessionToken("sess-1")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sid": "sess-1", "iss": sessionIssuer})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "wrong secret", token: foreign},
		{name: "unsigned", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateSessionToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", time.Minute))
	require.NoError(t, err)

	issuedAt := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	impl := svc.(*jwtService)
	impl.now = func() time.Time { return issuedAt }

	token, err := svc.IssueSessionToken("sess-1")
	require.NoError(t, err)

	impl.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}
