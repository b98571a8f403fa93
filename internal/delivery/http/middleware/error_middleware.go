package middleware

import (
	"log/slog"
	"net/http"

	"mallconsole/internal/console/view"
	deliverycontext "mallconsole/internal/delivery/context"
	"mallconsole/internal/delivery/http/response"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	internalErrorCode    = "INTERNAL_ERROR"
	internalErrorMessage = "Internal server error, please try again later"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. API callers get the
// JSON envelope; browsers get the error page.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message, details := m.classify(err, c)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	if WantsJSON(c) {
		_ = response.Error(c, status, code, message, details)

		return
	}

	if renderErr := c.Render(status, "error", view.Screen{
		Layout: m.layout(c),
		Body:   view.ErrorView{Status: status, Message: message},
	}); renderErr != nil {
		m.logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, message)
	}
}

func (m *ErrorMiddleware) classify(err error, c echo.Context) (status int, code, message string, details any) {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if d := appErr.Details(); d != "" {
			details = d
		}

		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message = http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return httpErr.Code, "HTTP_ERROR", message, nil
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return http.StatusInternalServerError, internalErrorCode, internalErrorMessage, nil
}

func (m *ErrorMiddleware) layout(c echo.Context) view.Layout {
	csrf, _ := c.Get(echomiddleware.DefaultCSRFConfig.ContextKey).(string)
	if session := SessionFrom(c); session != nil {
		return view.NewLayout(session.Snapshot(), "", csrf)
	}

	return view.Layout{Title: "Error", CSRF: csrf}
}
