package config

import (
	"strings"
	"time"
)

const (
	defaultBackendURL     = "http://localhost:8000"
	defaultBackendTimeout = 15 * time.Second
)

// BackendConfig configures the client for the leave management REST API.
type BackendConfig struct {
	// BaseURL is the API root; endpoint paths such as /auth/login are appended to it.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds every backend request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// MessageExpression is a JMESPath expression that extracts the user-facing message
	// from an error response body. Empty uses the client's default.
	MessageExpression string `env:"MESSAGE_EXPRESSION"`
}

// Sanitize trims the URL and restores defaults for unusable values.
func (c *BackendConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBackendURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultBackendTimeout
	}
	c.MessageExpression = strings.TrimSpace(c.MessageExpression)
}
