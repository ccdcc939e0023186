package httpx

import (
	"context"

	"github.com/target/leave-ui/internal/backend"
	domainauth "github.com/target/leave-ui/internal/domain/auth"
)

// SetSessionInContext returns a child context that carries the session and authenticates
// backend calls made with it. If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	ctx = domainauth.WithSession(ctx, session)
	return backend.WithToken(ctx, session.Token)
}

// GetSessionFromContext retrieves the session from the request context, or nil.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := domainauth.SessionFromContext(ctx); ok {
		return s
	}
	return nil
}
