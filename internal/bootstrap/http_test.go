package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/target/leave-ui/config"
)

func TestBuildHTTPHandler_ServesHealthAndLogin(t *testing.T) {
	t.Setenv("NODE_ENV", "")
	cfg := testConfig(config.SessionStoreMemory)
	svc, err := NewServices(&ServiceDeps{Config: cfg, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("NewServices() error = %v", err)
	}

	h, err := BuildHTTPHandler(&HTTPServerConfig{Config: cfg, Services: svc, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("BuildHTTPHandler() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("GET /healthz = %d, want 200", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/login" {
		t.Errorf("GET / = %d %q, want redirect to /login", rr.Code, rr.Header().Get("Location"))
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("GET /login = %d, want 200", rr.Code)
	}
}

func TestBuildHTTPHandler_RequiresConfig(t *testing.T) {
	if _, err := BuildHTTPHandler(nil); err == nil {
		t.Error("BuildHTTPHandler(nil) error = nil")
	}
	if _, err := BuildHTTPHandler(&HTTPServerConfig{}); err == nil {
		t.Error("BuildHTTPHandler without config error = nil")
	}
}
