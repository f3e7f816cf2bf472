package ports

import "context"

// TokenStore persists one access token per console session id. Implementations
// must treat the token as opaque and Clear of an absent id as a no-op.
type TokenStore interface {
	Get(ctx context.Context, sid string) (token string, ok bool, err error)
	Set(ctx context.Context, sid, token string) error
	Clear(ctx context.Context, sid string) error
}

// TokenSource yields the bearer token for an outgoing backend request, if the
// calling context belongs to an authenticated session.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}
