package auth

import (
	"context"
	"sync/atomic"
)

type sessionKey struct{}

type revocationKey struct{}

// WithSession returns a copy of ctx carrying the authenticated session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by WithSession.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// Revocation records that the session serving a request was invalidated mid-request.
// The HTTP layer installs one per request and inspects it once the handler returns.
type Revocation struct {
	revoked atomic.Bool
}

// Revoke marks the session as revoked.
func (r *Revocation) Revoke() {
	if r != nil {
		r.revoked.Store(true)
	}
}

// Revoked reports whether Revoke was called.
func (r *Revocation) Revoked() bool {
	return r != nil && r.revoked.Load()
}

// WithRevocation returns a copy of ctx carrying a fresh Revocation.
func WithRevocation(ctx context.Context) (context.Context, *Revocation) {
	rev := &Revocation{}
	return context.WithValue(ctx, revocationKey{}, rev), rev
}

// RevocationFromContext returns the Revocation installed by WithRevocation, or nil.
func RevocationFromContext(ctx context.Context) *Revocation {
	rev, _ := ctx.Value(revocationKey{}).(*Revocation)
	return rev
}
