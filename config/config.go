package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server and cookie configuration
//   - backend.go: leave API client configuration
//   - session.go: session store, Redis and login throttling
//   - observability.go: metrics and tracing
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, insecure cookies).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Location is the IANA time zone used to decide what "today" is for date pickers.
	Location string `env:"APP_LOCATION" envDefault:"UTC"`

	HTTP      HTTPConfig
	Backend   BackendConfig   `envPrefix:"BACKEND_"`
	Session   SessionConfig   `envPrefix:"SESSION_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	LoginRate LoginRateConfig `envPrefix:"LOGIN_RATE_"`

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Location = strings.TrimSpace(c.Location)
	c.HTTP.Sanitize()
	c.Backend.Sanitize()
	c.Session.Sanitize()
	c.LoginRate.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// Validate rejects configurations the server cannot start with.
func (c *AppConfig) Validate() error {
	var errs []error

	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("BACKEND_BASE_URL must be an absolute URL, got %q", c.Backend.BaseURL))
	}
	if c.Session.Store == SessionStoreRedis && strings.TrimSpace(c.Redis.URI) == "" && len(c.Redis.ClusterNodes) == 0 {
		errs = append(errs, errors.New("REDIS_URI is required when SESSION_STORE=redis"))
	}
	if _, err := time.LoadLocation(c.Location); err != nil {
		errs = append(errs, fmt.Errorf("APP_LOCATION: %w", err))
	}

	return errors.Join(errs...)
}

// LocationOrUTC resolves Location, falling back to UTC when it is empty or unknown.
func (c *AppConfig) LocationOrUTC() *time.Location {
	if c.Location == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SecureCookies reports whether cookies should carry the Secure attribute.
func (c *AppConfig) SecureCookies() bool {
	if c.HTTP.CookieSecure != nil {
		return *c.HTTP.CookieSecure
	}
	return !c.IsDev
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
