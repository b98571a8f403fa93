package handler

import (
	"log/slog"
	"net/http"

	"mallconsole/internal/console/view"
	"mallconsole/internal/delivery/http/middleware"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const credentialsRequired = "Email and password are required"

// credentialsInput is the sign-in and registration form.
type credentialsInput struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
	Role     string `form:"role"`
}

// AuthHandler serves the login page and the identity actions.
type AuthHandler struct {
	sessions *middleware.SessionMiddleware
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessions *middleware.SessionMiddleware, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger}
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, body view.LoginView) error {
	return c.Render(status, "login", view.Screen{
		Layout: view.Layout{Title: "Sign in", CSRF: csrfToken(c)},
		Body:   body,
	})
}

// LoginPage shows the sign-in and registration forms.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}
	if session.Authenticated() {
		return redirectToPage(c, entity.PageDashboard)
	}

	return h.renderLogin(c, http.StatusOK, view.LoginView{Registered: c.QueryParam("registered") == "1"})
}

// Login signs the session in. The catalog is loaded before the dashboard is shown.
func (h *AuthHandler) Login(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var input credentialsInput
	if err := c.Bind(&input); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, view.LoginView{Error: credentialsRequired})
	}
	if err := c.Validate(&input); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, view.LoginView{Email: input.Email, Error: credentialsRequired})
	}

	if err := session.SignIn(c.Request().Context(), input.Email, input.Password); err != nil {
		return h.renderLogin(c, domainerrors.HTTPStatus(err), view.LoginView{
			Email: input.Email,
			Error: domainerrors.UserMessage(err),
		})
	}

	return redirectToPage(c, entity.PageDashboard)
}

// Register creates an account. The session stays signed out.
func (h *AuthHandler) Register(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var input credentialsInput
	if err := c.Bind(&input); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, view.LoginView{Error: credentialsRequired})
	}
	if err := c.Validate(&input); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, view.LoginView{Error: credentialsRequired})
	}

	if err := session.SignUp(c.Request().Context(), input.Email, input.Password, entity.Role(input.Role)); err != nil {
		return h.renderLogin(c, domainerrors.HTTPStatus(err), view.LoginView{Error: domainerrors.UserMessage(err)})
	}

	return c.Redirect(http.StatusSeeOther, middleware.LoginPath+"?registered=1")
}

// Logout signs the session out and forgets it.
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	if err := session.SignOut(c.Request().Context()); err != nil {
		session.Notify(err)

		return redirectToPage(c, entity.PageDashboard)
	}

	h.sessions.Forget(c, session)

	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
