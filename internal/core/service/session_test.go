package service

import (
	"context"
	"testing"
	"time"
)

type stubStore struct {
	tokens map[string]string
	getErr error
	setErr error
}

func newStubStore() *stubStore {
	return &stubStore{tokens: map[string]string{}}
}

func (s *stubStore) Get(_ context.Context, sid string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	t, ok := s.tokens[sid]
	return t, ok, nil
}

func (s *stubStore) Set(_ context.Context, sid, token string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.tokens[sid] = token
	return nil
}

func (s *stubStore) Clear(_ context.Context, sid string) error {
	delete(s.tokens, sid)
	return nil
}

func TestSessionManager_LoginThenLogout(t *testing.T) {
	store := newStubStore()
	m := NewSessionManager(store, "orbit_session", time.Hour)
	ctx := context.Background()

	sess, cookie, err := m.Login(ctx, "abc123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !sess.Authenticated || sess.Token != "abc123" {
		t.Fatalf("unexpected session after login: %+v", sess)
	}
	if cookie == nil || cookie.Value != sess.ID || !cookie.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if store.tokens[sess.ID] != "abc123" {
		t.Fatalf("token not persisted")
	}

	// Resolve re-derives the same state from the store.
	resolved, err := m.Resolve(ctx, sess.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !resolved.Authenticated || resolved.Token != "abc123" {
		t.Fatalf("unexpected resolved session: %+v", resolved)
	}

	expired, err := m.Logout(ctx, sess.ID)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if expired.MaxAge != -1 {
		t.Fatalf("logout cookie should expire, got MaxAge=%d", expired.MaxAge)
	}
	if len(store.tokens) != 0 {
		t.Fatalf("token store should be empty after logout")
	}

	resolved, err = m.Resolve(ctx, sess.ID)
	if err != nil {
		t.Fatalf("resolve after logout: %v", err)
	}
	if resolved.Authenticated {
		t.Fatalf("session should be unauthenticated after logout")
	}
}

func TestSessionManager_LogoutIsIdempotent(t *testing.T) {
	m := NewSessionManager(newStubStore(), "orbit_session", time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := m.Logout(ctx, "never-seen"); err != nil {
			t.Fatalf("logout %d: %v", i+1, err)
		}
	}
	if _, err := m.Logout(ctx, ""); err != nil {
		t.Fatalf("logout with no sid: %v", err)
	}
}

func TestSessionManager_LoginRejectsEmptyToken(t *testing.T) {
	store := newStubStore()
	m := NewSessionManager(store, "orbit_session", time.Hour)

	if _, _, err := m.Login(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty token")
	}
	if len(store.tokens) != 0 {
		t.Fatalf("nothing should be persisted on a failed login")
	}
}

func TestSessionManager_ResolveAnonymous(t *testing.T) {
	m := NewSessionManager(newStubStore(), "orbit_session", time.Hour)

	sess, err := m.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sess.Authenticated {
		t.Fatalf("empty sid must resolve anonymous")
	}

	sess, err = m.Resolve(context.Background(), "unknown-sid")
	if err != nil {
		t.Fatalf("resolve unknown: %v", err)
	}
	if sess.Authenticated {
		t.Fatalf("unknown sid must resolve unauthenticated")
	}
}

func TestSessionManager_TokenSource(t *testing.T) {
	store := newStubStore()
	m := NewSessionManager(store, "orbit_session", time.Hour)
	ctx := context.Background()

	sess, _, err := m.Login(ctx, "tok-42")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if tok, ok := m.Token(ContextWithSessionID(ctx, sess.ID)); !ok || tok != "tok-42" {
		t.Fatalf("expected token for bound context, got %q ok=%v", tok, ok)
	}
	if _, ok := m.Token(ctx); ok {
		t.Fatalf("unbound context must yield no token")
	}
}
