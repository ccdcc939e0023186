package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
	"github.com/target/leave-ui/internal/mocks"
	"github.com/target/leave-ui/internal/service"
)

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the test if templates are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// ContainsAll checks if a string contains all the given substrings.
func ContainsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// testToday is the fixed "today" used by handler tests.
var testToday = time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC) //nolint:gochecknoglobals // test fixture

// newTestUI wires UIHandlers against a gomock backend. The real DashboardService runs on top of
// the same mock so dashboard tests exercise the aggregation too.
func newTestUI(t *testing.T) (*UIHandlers, *mocks.MockAPI) {
	t.Helper()
	tr := RequireTemplateRenderer(t)
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	now := func() time.Time { return testToday }
	return &UIHandlers{
		T:          tr,
		Leave:      api,
		Approvals:  api,
		Admin:      api,
		Dashboards: service.NewDashboardService(service.DashboardServiceOptions{Backend: api, Now: now}),
		Now:        now,
	}, api
}

// testSession returns a session for role with deterministic identity fields.
func testSession(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-" + string(role),
		Token:     "token-" + string(role),
		UserID:    "user-" + string(role),
		Email:     string(role) + "@example.com",
		FirstName: "Test",
		LastName:  role.Label(),
		Role:      role,
		ExpiresAt: testToday.Add(24 * time.Hour),
	}
}

// requestAs builds a request carrying a session for role. A non-nil form is sent url-encoded.
func requestAs(role domainauth.Role, method, target string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	r := httptest.NewRequest(method, target, body)
	if form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return r.WithContext(SetSessionInContext(r.Context(), testSession(role)))
}

// asHTMX marks r as an htmx (non-boosted) request.
func asHTMX(r *http.Request) *http.Request {
	r.Header.Set("Hx-Request", "true")
	return r
}

// fakeAuthService is a configurable AuthServiceInterface for handler and middleware tests.
type fakeAuthService struct {
	loginFn   func(ctx context.Context, email, password string) (*domainauth.Session, error)
	restoreFn func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFn  func(ctx context.Context, sessionID string) error

	loggedOut []string
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return nil, errors.New("login not configured")
}

func (f *fakeAuthService) Restore(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if f.restoreFn != nil {
		return f.restoreFn(ctx, sessionID)
	}
	return nil, service.ErrSessionInvalid
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	f.loggedOut = append(f.loggedOut, sessionID)
	if f.logoutFn != nil {
		return f.logoutFn(ctx, sessionID)
	}
	return nil
}

// findCookie returns the named cookie set on the response, or nil.
func findCookie(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
