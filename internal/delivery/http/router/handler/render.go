// Package handler contains the HTTP handlers of the console.
package handler

import (
	"net/http"

	"mallconsole/internal/console"
	"mallconsole/internal/console/view"
	"mallconsole/internal/delivery/http/middleware"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// csrfToken returns the token published by echo's CSRF middleware.
func csrfToken(c echo.Context) string {
	token, _ := c.Get(echomiddleware.DefaultCSRFConfig.ContextKey).(string)

	return token
}

// sessionOf returns the attached console session. Routes behind RequireAuth always have one.
func sessionOf(c echo.Context) (*console.Session, error) {
	session := middleware.SessionFrom(c)
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return session, nil
}

// renderScreen renders a signed-in page and consumes the pending notice.
func renderScreen(c echo.Context, status int, name string, session *console.Session, body func(console.Snapshot) any) error {
	snap := session.Snapshot()

	return c.Render(status, name, view.Screen{
		Layout: view.NewLayout(snap, session.TakeNotice(), csrfToken(c)),
		Body:   body(snap),
	})
}

// redirectToPage sends the browser to page after a form post.
func redirectToPage(c echo.Context, page entity.Page) error {
	return c.Redirect(http.StatusSeeOther, view.PageHref(page))
}

// formStatus is the status of a form re-rendered after a rejected submission.
func formStatus(err error) int {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return http.StatusInternalServerError
	}
	if appErr.HTTPCode() < http.StatusInternalServerError {
		return http.StatusUnprocessableEntity
	}

	return appErr.HTTPCode()
}

// checked reads an HTML checkbox posted with the value "true".
func checked(c echo.Context, name string) *bool {
	value := c.FormValue(name) == "true"

	return &value
}
