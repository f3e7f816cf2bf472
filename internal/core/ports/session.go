package ports

import (
	"context"
	"net/http"

	"github.com/orbit-facilities/console/internal/core/domain"
)

// SessionController owns the two-state auth machine. Resolve derives the
// session from the token store; Login and Logout are the only transitions.
type SessionController interface {
	Resolve(ctx context.Context, sid string) (domain.Session, error)
	Login(ctx context.Context, token string) (domain.Session, *http.Cookie, error)
	Logout(ctx context.Context, sid string) (*http.Cookie, error)
	CookieName() string
}
