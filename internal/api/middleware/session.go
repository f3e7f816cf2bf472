package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orbit-facilities/console/internal/core/domain"
	"github.com/orbit-facilities/console/internal/core/ports"
	"github.com/orbit-facilities/console/internal/core/service"
)

const sessionKey = "console.session"

// Session resolves the browser's session from its cookie on every request,
// exposes it via SessionFrom, and stamps the request context so the backend
// client can attach the session's bearer token.
//
// A token-store failure degrades to an anonymous session rather than failing
// the request: the guard then bounces the user to the login screen, which is
// recoverable, while a hard 500 on every route is not.
func Session(sessions ports.SessionController, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if cookie, err := c.Cookie(sessions.CookieName()); err == nil {
				sid = cookie.Value
			}

			sess, err := sessions.Resolve(c.Request().Context(), sid)
			if err != nil {
				log.Warn().Err(err).Msg("session resolve failed; continuing anonymous")
				sess = domain.Anonymous
			}

			c.Set(sessionKey, sess)

			req := c.Request()
			c.SetRequest(req.WithContext(service.ContextWithSessionID(req.Context(), sess.ID)))

			return next(c)
		}
	}
}

// SessionFrom returns the session resolved by the Session middleware, or the
// anonymous session when the middleware did not run.
func SessionFrom(c echo.Context) domain.Session {
	sess, _ := c.Get(sessionKey).(domain.Session)
	return sess
}

// SetSession injects a session into the request scope the way the Session
// middleware would. Intended for use in tests only.
func SetSession(c echo.Context, sess domain.Session) {
	c.Set(sessionKey, sess)
}
