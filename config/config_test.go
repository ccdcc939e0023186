package config

import (
	"strings"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func parseConfig(t *testing.T) AppConfig {
	t.Helper()
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	cfg.Sanitize()
	return cfg
}

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("NODE_ENV", "")
	cfg := parseConfig(t)

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Backend.BaseURL != "http://localhost:8000" {
		t.Errorf("Backend.BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Errorf("Backend.Timeout = %v", cfg.Backend.Timeout)
	}
	if cfg.Session.Store != SessionStoreRedis {
		t.Errorf("Session.Store = %q, want redis", cfg.Session.Store)
	}
	if cfg.Session.TTL != 8*time.Hour || cfg.Session.RefreshInterval != 5*time.Minute {
		t.Errorf("Session = %+v", cfg.Session)
	}
	if cfg.Session.CookieName != "session_id" {
		t.Errorf("Session.CookieName = %q", cfg.Session.CookieName)
	}
	if cfg.Redis.KeyPrefix != "session:" {
		t.Errorf("Redis.KeyPrefix = %q", cfg.Redis.KeyPrefix)
	}
	if cfg.HTTP.CookieSecure != nil {
		t.Errorf("HTTP.CookieSecure = %v, want nil", *cfg.HTTP.CookieSecure)
	}
	if !cfg.SecureCookies() {
		t.Error("SecureCookies() = false outside dev mode")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("DEV", "true")
	t.Setenv("APP_LOCATION", "Europe/Berlin")
	t.Setenv("BACKEND_BASE_URL", " https://leave.example.com/api/ ")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("SESSION_STORE", "Memory")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_REFRESH_INTERVAL", "0s")
	t.Setenv("LOGIN_RATE_PER_MINUTE", "30")
	t.Setenv("LOGIN_RATE_BURST", "0")
	t.Setenv("HTTP_COOKIE_SECURE", "true")
	t.Setenv("REDIS_CLUSTER_NODES", "a:6379,b:6379")

	cfg := parseConfig(t)

	if !cfg.IsDev {
		t.Error("IsDev = false")
	}
	if cfg.Backend.BaseURL != "https://leave.example.com/api" {
		t.Errorf("Backend.BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Errorf("Backend.Timeout = %v", cfg.Backend.Timeout)
	}
	if cfg.Session.Store != SessionStoreMemory {
		t.Errorf("Session.Store = %q", cfg.Session.Store)
	}
	if cfg.Session.TTL != 2*time.Hour || cfg.Session.RefreshInterval != 0 {
		t.Errorf("Session = %+v", cfg.Session)
	}
	if cfg.LoginRate.PerMinute != 30 || cfg.LoginRate.Burst != 1 {
		t.Errorf("LoginRate = %+v", cfg.LoginRate)
	}
	if !cfg.SecureCookies() {
		t.Error("explicit HTTP_COOKIE_SECURE should win over dev mode")
	}
	if len(cfg.Redis.ClusterNodes) != 2 {
		t.Errorf("Redis.ClusterNodes = %v", cfg.Redis.ClusterNodes)
	}
	if got := cfg.LocationOrUTC().String(); got != "Europe/Berlin" {
		t.Errorf("LocationOrUTC() = %q", got)
	}
}

func TestAppConfig_InvalidSessionStore(t *testing.T) {
	t.Setenv("SESSION_STORE", "disk")
	var cfg AppConfig
	err := env.Parse(&cfg)
	if err == nil || !strings.Contains(err.Error(), "invalid SessionStore") {
		t.Fatalf("env.Parse() error = %v, want invalid SessionStore", err)
	}
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*AppConfig) {}},
		{
			name:    "relative backend url",
			mutate:  func(c *AppConfig) { c.Backend.BaseURL = "/api" },
			wantErr: "BACKEND_BASE_URL",
		},
		{
			name: "redis store without address",
			mutate: func(c *AppConfig) {
				c.Session.Store = SessionStoreRedis
				c.Redis.URI = ""
			},
			wantErr: "REDIS_URI",
		},
		{
			name: "memory store without redis",
			mutate: func(c *AppConfig) {
				c.Session.Store = SessionStoreMemory
				c.Redis.URI = ""
			},
		},
		{
			name:    "unknown location",
			mutate:  func(c *AppConfig) { c.Location = "Mars/Olympus" },
			wantErr: "APP_LOCATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AppConfig{
				Location: "UTC",
				Backend:  BackendConfig{BaseURL: "http://localhost:8000"},
				Session:  SessionConfig{Store: SessionStoreRedis},
				Redis:    RedisConfig{URI: "localhost:6379"},
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestAppConfig_LocationOrUTC(t *testing.T) {
	for _, loc := range []string{"", "Nowhere/Special"} {
		cfg := AppConfig{Location: loc}
		if got := cfg.LocationOrUTC(); got != time.UTC {
			t.Errorf("LocationOrUTC(%q) = %v, want UTC", loc, got)
		}
	}
}

func TestSessionConfig_Sanitize(t *testing.T) {
	c := SessionConfig{TTL: time.Second, RefreshInterval: -time.Second, CookieName: " "}
	c.Sanitize()

	if c.Store != SessionStoreRedis {
		t.Errorf("Store = %q", c.Store)
	}
	if c.TTL != time.Minute {
		t.Errorf("TTL = %v, want 1m", c.TTL)
	}
	if c.RefreshInterval != 5*time.Minute {
		t.Errorf("RefreshInterval = %v", c.RefreshInterval)
	}
	if c.CookieName != "session_id" {
		t.Errorf("CookieName = %q", c.CookieName)
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name        string
		input       ObservabilityMetricsConfig
		wantEnabled bool
		wantAddr    string
	}{
		{
			name:        "keeps enabled with address",
			input:       ObservabilityMetricsConfig{Enabled: true, StatsdAddress: " 10.0.0.5:8125 "},
			wantEnabled: true,
			wantAddr:    "10.0.0.5:8125",
		},
		{
			name:        "disables when address empty",
			input:       ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "   "},
			wantEnabled: false,
			wantAddr:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			cfg.Sanitize()
			if cfg.IsEnabled() != tt.wantEnabled {
				t.Errorf("IsEnabled() = %v, want %v", cfg.IsEnabled(), tt.wantEnabled)
			}
			if cfg.StatsdAddress != tt.wantAddr {
				t.Errorf("StatsdAddress = %q, want %q", cfg.StatsdAddress, tt.wantAddr)
			}
		})
	}
}

func TestObservabilityTracingConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityTracingConfig{Enabled: true, Endpoint: " ", ServiceName: ""}
	cfg.Sanitize()
	if cfg.Enabled {
		t.Error("tracing should be disabled without an endpoint")
	}
	if cfg.ServiceName != "leave-ui" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
}
