package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orbit-facilities/console/internal/core/domain"
	"github.com/orbit-facilities/console/internal/core/service"
)

type stubSessions struct {
	cookieName string
	resolveFn  func(ctx context.Context, sid string) (domain.Session, error)
}

func (s *stubSessions) Resolve(ctx context.Context, sid string) (domain.Session, error) {
	return s.resolveFn(ctx, sid)
}

func (s *stubSessions) Login(context.Context, string) (domain.Session, *http.Cookie, error) {
	panic("not used")
}

func (s *stubSessions) Logout(context.Context, string) (*http.Cookie, error) {
	panic("not used")
}

func (s *stubSessions) CookieName() string { return s.cookieName }

func TestSession_ResolvesCookieAndStampsContext(t *testing.T) {
	sessions := &stubSessions{
		cookieName: "orbit_session",
		resolveFn: func(_ context.Context, sid string) (domain.Session, error) {
			if sid != "sid-1" {
				t.Fatalf("expected sid-1, got %q", sid)
			}
			return domain.Session{ID: sid, Token: "tok", Authenticated: true}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "orbit_session", Value: "sid-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var inHandler domain.Session
	var stampedSID string
	h := Session(sessions, zerolog.Nop())(func(c echo.Context) error {
		inHandler = SessionFrom(c)
		stampedSID = service.SessionIDFromContext(c.Request().Context())
		return nil
	})

	if err := h(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if !inHandler.Authenticated || inHandler.Token != "tok" {
		t.Fatalf("unexpected session in handler: %+v", inHandler)
	}
	if stampedSID != "sid-1" {
		t.Fatalf("request context not stamped, got %q", stampedSID)
	}
}

func TestSession_NoCookieIsAnonymous(t *testing.T) {
	sessions := &stubSessions{
		cookieName: "orbit_session",
		resolveFn: func(_ context.Context, sid string) (domain.Session, error) {
			if sid != "" {
				t.Fatalf("expected empty sid, got %q", sid)
			}
			return domain.Anonymous, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Session(sessions, zerolog.Nop())(func(c echo.Context) error {
		if SessionFrom(c).Authenticated {
			t.Fatalf("expected anonymous session")
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
}

func TestSession_StoreFailureDegradesToAnonymous(t *testing.T) {
	sessions := &stubSessions{
		cookieName: "orbit_session",
		resolveFn: func(context.Context, string) (domain.Session, error) {
			return domain.Anonymous, errors.New("redis down")
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "orbit_session", Value: "sid-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := Session(sessions, zerolog.Nop())(func(c echo.Context) error {
		called = true
		if SessionFrom(c).Authenticated {
			t.Fatalf("store failure must not authenticate")
		}
		return nil
	})

	if err := h(c); err != nil {
		t.Fatalf("middleware must not fail the request: %v", err)
	}
	if !called {
		t.Fatalf("next handler should still run")
	}
}
