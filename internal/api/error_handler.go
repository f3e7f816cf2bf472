package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orbit-facilities/console/internal/api/view"
	"github.com/orbit-facilities/console/internal/core/domain"
	"github.com/orbit-facilities/console/internal/infrastructure/backend"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the user.
//   - Renders the error screen. Errors never take the console process down;
//     a bad token or a dead backend is a page, not a crash.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if renderErr := c.Render(code, "error", view.ErrorData{Status: code, Message: msg}); renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Backend responses that escaped a screen handler keep their status.
	if status := backend.StatusOf(err); status != 0 {
		return status, "the backend rejected the request"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrEmptyToken), errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, "not signed in"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
