package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mallconsole/config"
	"mallconsole/internal/console"
	deliverycontext "mallconsole/internal/delivery/context"
	"mallconsole/internal/domain/constants"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	sessionKey = "console_session"

	// LoginPath is where signed-out browsers are sent.
	LoginPath = "/login"
	apiPrefix = "/api/"
)

// SessionMiddleware binds every request to a console session through a signed cookie.
type SessionMiddleware struct {
	registry   *console.Registry
	tokens     service.SessionTokenService
	cookieName string
	secure     bool
	logger     *slog.Logger
	now        func() time.Time
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(
	registry *console.Registry,
	tokens service.SessionTokenService,
	cfg *config.Config,
	logger *slog.Logger,
) *SessionMiddleware {
	if cfg.Env.Env == constants.EnvProduction && !cfg.Session.Secure {
		logger.Warn("Session cookie is not marked secure in production")
	}

	return &SessionMiddleware{
		registry:   registry,
		tokens:     tokens,
		cookieName: cfg.Session.CookieName,
		secure:     cfg.Session.Secure,
		logger:     logger,
		now:        time.Now,
	}
}

// Attach resolves the session named by the cookie. A missing, invalid or
// expired cookie starts a new signed-out session.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := m.resolve(c)
		c.Set(sessionKey, session)

		ctx := deliverycontext.WithSessionID(c.Request().Context(), session.ID())
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *SessionMiddleware) resolve(c echo.Context) *console.Session {
	if cookie, err := c.Cookie(m.cookieName); err == nil {
		claims, err := m.tokens.ValidateSessionToken(cookie.Value)
		if err == nil {
			if session, ok := m.registry.Lookup(claims.SessionID); ok {
				if claims.IssuedAt == nil || m.now().Sub(claims.IssuedAt.Time) > m.tokens.SessionDuration()/2 {
					m.issueCookie(c, session.ID())
				}

				return session
			}
		}
	}

	session := m.registry.Create()
	m.issueCookie(c, session.ID())

	return session
}

func (m *SessionMiddleware) issueCookie(c echo.Context, sessionID string) {
	token, err := m.tokens.IssueSessionToken(sessionID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Error("Failed to issue session cookie", slog.Any("error", err))

		return
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.tokens.SessionDuration().Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Forget drops the session from the registry and expires its cookie.
func (m *SessionMiddleware) Forget(c echo.Context, session *console.Session) {
	m.registry.Remove(session.ID())
	m.clearCookie(c)
}

func (m *SessionMiddleware) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth lets signed-in sessions through. Pages redirect to the login
// form; API calls fail with 401. It must be used AFTER Attach.
func (m *SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := SessionFrom(c)
		if session != nil && session.Authenticated() {
			return next(c)
		}

		if strings.HasPrefix(c.Request().URL.Path, apiPrefix) {
			return domainerrors.ErrUnauthenticated
		}

		return c.Redirect(http.StatusSeeOther, LoginPath)
	}
}

// SessionFrom returns the session attached to the request, or nil.
func SessionFrom(c echo.Context) *console.Session {
	session, _ := c.Get(sessionKey).(*console.Session)

	return session
}

// WantsJSON reports whether the caller expects a JSON error body.
func WantsJSON(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, apiPrefix) {
		return true
	}

	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
