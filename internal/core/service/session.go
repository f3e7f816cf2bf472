package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/orbit-facilities/console/internal/core/domain"
	"github.com/orbit-facilities/console/internal/core/ports"
)

type sessionIDKey struct{}

// ContextWithSessionID stamps the request context with the browser's session
// id so the backend client can look the token up per request.
func ContextWithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sid)
}

// SessionIDFromContext returns the session id stamped by the middleware, or
// the empty string for anonymous requests.
func SessionIDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(sessionIDKey{}).(string)
	return sid
}

// SessionManager implements the auth session state machine. The state is not
// held in memory: it is re-derived from token presence in the store on every
// Resolve, so a console restart or a second replica sees the same sessions.
type SessionManager struct {
	store      ports.TokenStore
	cookieName string
	ttl        time.Duration
}

func NewSessionManager(store ports.TokenStore, cookieName string, ttl time.Duration) *SessionManager {
	if cookieName == "" {
		cookieName = "orbit_session"
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionManager{store: store, cookieName: cookieName, ttl: ttl}
}

func (m *SessionManager) CookieName() string { return m.cookieName }

// Resolve derives the session for a request. An empty or unknown sid yields
// the anonymous session, never an error.
func (m *SessionManager) Resolve(ctx context.Context, sid string) (domain.Session, error) {
	if sid == "" {
		return domain.Anonymous, nil
	}
	token, ok, err := m.store.Get(ctx, sid)
	if err != nil {
		return domain.Anonymous, err
	}
	if !ok || token == "" {
		return domain.Session{ID: sid}, nil
	}
	return domain.Session{ID: sid, Token: token, Authenticated: true}, nil
}

// Login transitions to Authenticated: mints a session id, persists the token
// and returns the cookie the handler must set.
func (m *SessionManager) Login(ctx context.Context, token string) (domain.Session, *http.Cookie, error) {
	if token == "" {
		return domain.Anonymous, nil, domain.ErrEmptyToken
	}

	sid := uuid.NewString()
	if err := m.store.Set(ctx, sid, token); err != nil {
		return domain.Anonymous, nil, err
	}

	cookie := &http.Cookie{
		Name:     m.cookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return domain.Session{ID: sid, Token: token, Authenticated: true}, cookie, nil
}

// Logout transitions to Unauthenticated. It is idempotent: clearing an
// already-cleared or unknown session succeeds and still returns the
// expired cookie.
func (m *SessionManager) Logout(ctx context.Context, sid string) (*http.Cookie, error) {
	if sid != "" {
		if err := m.store.Clear(ctx, sid); err != nil {
			return nil, err
		}
	}

	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Token implements ports.TokenSource: the backend client calls it before each
// outgoing request to attach the caller's bearer credential.
func (m *SessionManager) Token(ctx context.Context) (string, bool) {
	sid := SessionIDFromContext(ctx)
	if sid == "" {
		return "", false
	}
	token, ok, err := m.store.Get(ctx, sid)
	if err != nil || !ok || token == "" {
		return "", false
	}
	return token, true
}
