package errors

import (
	"net/http"
	"testing"

	"mallconsole/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestAuthError_Messages(t *testing.T) {
	tests := []struct {
		reason AuthReason
		want   string
		code   int
	}{
		{AuthReasonUnknownAccount, "No account found with this email.", http.StatusUnauthorized},
		{AuthReasonWrongCredential, "Incorrect password.", http.StatusUnauthorized},
		{AuthReasonDuplicateAccount, "Email is already registered.", http.StatusConflict},
		{AuthReasonWeakCredential, "Password should be at least 6 characters.", http.StatusBadRequest},
		{AuthReasonMalformedEmail, "Invalid email address.", http.StatusBadRequest},
		{AuthReasonNetwork, "Network error. Please check your connection.", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			err := NewAuthError(tt.reason, "IGNORED", nil)
			assert.Equal(t, tt.want, err.Message())
			assert.Equal(t, tt.code, err.HTTPCode())
		})
	}
}

func TestAuthError_OtherFallsBackToProviderMessage(t *testing.T) {
	assert.Equal(t, "USER_DISABLED", NewAuthError(AuthReasonOther, "USER_DISABLED", nil).Message())
	assert.Equal(t, "An error occurred. Please try again.", NewAuthError(AuthReasonOther, "", nil).Message())
	assert.Equal(t, "AUTH_OTHER", NewAuthError(AuthReasonOther, "", nil).ErrorCode())
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	err := errors.Wrap(NewValidationError("Name, floor, and category are required"), "create shop")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Name, floor, and category are required", UserMessage(err))
}

func TestRemoteError_PassesMessageThrough(t *testing.T) {
	cause := errors.New("rpc error: code = Unavailable desc = connection refused")
	err := errors.WithStack(NewRemoteError(cause))

	assert.Equal(t, cause.Error(), UserMessage(err))
	assert.True(t, errors.Is(err, cause))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, HTTPStatus(errors.WithStack(ErrForbidden)))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(NewRemoteError(errors.New("down"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
