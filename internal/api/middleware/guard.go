package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orbit-facilities/console/internal/core/guard"
)

// Guard enforces the route-guard table on every navigation. It is the only
// consumer of guard.Decide, so the rules cannot diverge between screens.
// Must run after Session.
func Guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFrom(c)
			if d := guard.Decide(c.Request().URL.Path, sess.Authenticated); !d.Render() {
				return c.Redirect(http.StatusFound, d.Redirect)
			}
			return next(c)
		}
	}
}
