// Package guard holds the single canonical route-guard table. It is a pure
// function of (path, authentication state) so it can be unit-tested without a
// router, and so no second divergent copy of the rules can grow elsewhere.
package guard

import "strings"

const (
	PathRoot         = "/"
	PathLogin        = "/login"
	PathRegistration = "/registration"
	PathDashboard    = "/dashboard"
)

// Decision is the outcome of evaluating one navigation.
type Decision struct {
	// Redirect is the target path when non-empty; otherwise the requested
	// screen renders.
	Redirect string
}

// Render reports whether the requested path should be served as-is.
func (d Decision) Render() bool { return d.Redirect == "" }

// Decide evaluates the guard table. It is idempotent and side-effect free,
// and every redirect target decides to render under the same authentication
// state, so no decision chain can loop.
func Decide(path string, authenticated bool) Decision {
	switch {
	case path == PathRoot:
		if authenticated {
			return Decision{Redirect: PathDashboard}
		}
		return Decision{Redirect: PathLogin}

	case path == PathLogin, path == PathRegistration:
		if authenticated {
			return Decision{Redirect: PathDashboard}
		}
		return Decision{}

	case path == PathDashboard, strings.HasPrefix(path, PathDashboard+"/"):
		if !authenticated {
			return Decision{Redirect: PathLogin}
		}
		return Decision{}
	}

	// Paths outside the table (health, metrics, logout, assets) are not
	// guarded here.
	return Decision{}
}
