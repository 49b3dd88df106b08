package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the central HTTP error handler. Echo's
// *HTTPError values pass through with their own status; anything else is an
// unhandled failure and gets logged with a stack trace before the client
// sees a plain 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		slog.Error("Internal Server Error (Unhandled)",
			"error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)

		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
