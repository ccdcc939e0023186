package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/target/leave-ui/internal/backend"
	domainauth "github.com/target/leave-ui/internal/domain/auth"
	"github.com/target/leave-ui/internal/domain/model"
	apperrors "github.com/target/leave-ui/internal/errors"
	"github.com/target/leave-ui/internal/ports"
)

const (
	// DefaultSessionTTL bounds sessions whose token carries no expiry.
	DefaultSessionTTL = 8 * time.Hour
	// DefaultRefreshInterval is how long an identity snapshot is trusted before it is re-resolved.
	DefaultRefreshInterval = 5 * time.Minute
)

// ErrSessionInvalid is returned when a session id does not resolve to a usable session.
var ErrSessionInvalid = errors.New("session invalid")

// AuthBackend is the subset of the backend client used for authentication.
type AuthBackend interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResult, error)
	Me(ctx context.Context) (*model.User, error)
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Backend         AuthBackend
	Sessions        ports.SessionStore
	SessionTTL      time.Duration
	RefreshInterval time.Duration
	Logger          *slog.Logger
	Now             func() time.Time
}

// AuthService owns the lifecycle of server-side sessions: login, restoration, logout and
// revocation after the backend rejects a token.
type AuthService struct {
	backend  AuthBackend
	sessions ports.SessionStore
	ttl      time.Duration
	refresh  time.Duration
	logger   *slog.Logger
	now      func() time.Time

	restores singleflight.Group
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		backend:  opts.Backend,
		sessions: opts.Sessions,
		ttl:      ttl,
		refresh:  opts.RefreshInterval,
		logger:   logger,
		now:      now,
	}
}

// Login exchanges credentials for a backend token, resolves the user's profile and persists a
// new session. Nothing is stored unless every step succeeds.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.Validation("Email and password are required.")
	}

	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if res.Token == "" {
		return nil, apperrors.Wrap(errors.New("empty token"), apperrors.ErrCodeServer, "The leave service did not issue a session token.")
	}

	user, err := s.backend.Me(backend.WithToken(ctx, res.Token))
	if err != nil {
		return nil, fmt.Errorf("resolve current user: %w", err)
	}
	if !user.Role.Valid() {
		return nil, &apperrors.AppError{
			Code:    apperrors.ErrCodeForbidden,
			Message: "Your account does not have a supported role.",
			Cause:   fmt.Errorf("role %q", user.Role),
		}
	}

	now := s.now()
	expiresAt := s.expiry(res.Token, now)
	if !expiresAt.After(now) {
		return nil, apperrors.Authentication("The leave service issued an expired token.")
	}

	session := domainauth.Session{
		ID:         generateSessionID(),
		Token:      res.Token,
		ExpiresAt:  expiresAt,
		ResolvedAt: now,
	}
	applyUser(&session, user)

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", session.UserID, "role", session.Role)
	return &session, nil
}

// GetSession retrieves a session by ID. Expired sessions are removed.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, ErrSessionInvalid
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionInvalid, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionInvalid
	}

	return &session, nil
}

// Restore loads a session and, once its identity snapshot is older than the refresh interval,
// confirms the user with the backend. A rejected token or a changed role ends the session;
// an unreachable backend keeps the cached identity. Concurrent restores of one session share
// a single backend call.
func (s *AuthService) Restore(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.refresh <= 0 || s.now().Sub(session.ResolvedAt) < s.refresh {
		return session, nil
	}

	v, err, _ := s.restores.Do(sessionID, func() (any, error) {
		return s.resolve(ctx, *session)
	})
	if err != nil {
		return nil, err
	}
	restored, _ := v.(*domainauth.Session)
	if restored == nil {
		return nil, ErrSessionInvalid
	}
	cp := *restored
	return &cp, nil
}

func (s *AuthService) resolve(ctx context.Context, session domainauth.Session) (*domainauth.Session, error) {
	user, err := s.backend.Me(backend.WithToken(ctx, session.Token))
	if err != nil {
		if apperrors.IsUnauthorized(err) || apperrors.IsAuthentication(err) {
			s.drop(ctx, session, "token rejected")
			return nil, errors.Join(ErrSessionInvalid, err)
		}
		s.logger.WarnContext(ctx, "session refresh failed, keeping cached identity",
			"user_id", session.UserID,
			"error", err,
		)
		return &session, nil
	}

	if user.Role != session.Role {
		s.drop(ctx, session, "role changed")
		return nil, ErrSessionInvalid
	}

	applyUser(&session, user)
	session.ResolvedAt = s.now()
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.WarnContext(ctx, "persist refreshed session failed", "user_id", session.UserID, "error", err)
	}
	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// HandleUnauthorized is registered with the backend client. It ends the session carried by
// ctx and marks the request's revocation so the HTTP layer sends the browser to login.
func (s *AuthService) HandleUnauthorized(ctx context.Context) {
	session, ok := domainauth.SessionFromContext(ctx)
	if !ok {
		return
	}
	s.drop(ctx, *session, "backend returned 401")
	domainauth.RevocationFromContext(ctx).Revoke()
}

func (s *AuthService) drop(ctx context.Context, session domainauth.Session, reason string) {
	if err := s.sessions.Delete(context.WithoutCancel(ctx), session.ID); err != nil {
		s.logger.ErrorContext(ctx, "delete session failed", "user_id", session.UserID, "error", err)
	}
	s.logger.InfoContext(ctx, "session ended", "user_id", session.UserID, "reason", reason)
}

// expiry returns the earlier of the token's exp claim and now+ttl.
func (s *AuthService) expiry(token string, now time.Time) time.Time {
	limit := now.Add(s.ttl)
	if exp, ok := tokenExpiry(token); ok && exp.Before(limit) {
		return exp
	}
	return limit
}

// tokenExpiry reads the exp claim of a JWT without verifying it; the backend verifies tokens.
// Opaque tokens report false.
func tokenExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func applyUser(session *domainauth.Session, user *model.User) {
	session.UserID = user.ID
	session.Email = user.Email
	session.FirstName = user.FirstName
	session.LastName = user.LastName
	session.Role = user.Role
	session.Department = user.Department
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.New().String()
}
