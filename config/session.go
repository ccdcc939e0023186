package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionStoreKind selects where sessions are kept.
type SessionStoreKind string

const (
	// SessionStoreRedis keeps sessions in Redis so they survive restarts and are shared across replicas.
	SessionStoreRedis SessionStoreKind = "redis"
	// SessionStoreMemory keeps sessions in process memory (development and single-instance use).
	SessionStoreMemory SessionStoreKind = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreKind.
func (k *SessionStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "redis", "memory":
		*k = SessionStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionStore: %q (valid options: redis, memory)", v)
	}
}

const (
	minSessionTTL      = time.Minute
	defaultSessionTTL  = 8 * time.Hour
	defaultRefreshTime = 5 * time.Minute
)

// SessionConfig controls server-side sessions.
type SessionConfig struct {
	Store SessionStoreKind `env:"STORE" envDefault:"redis"`

	// TTL caps session lifetime; tokens with an earlier exp claim end sooner.
	TTL time.Duration `env:"TTL" envDefault:"8h"`

	// RefreshInterval is how long a cached identity is trusted before it is re-checked
	// against the backend. Zero disables re-checks.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m"`

	// CookieName is the name of the cookie carrying the session id.
	CookieName string `env:"COOKIE_NAME" envDefault:"session_id"`
}

// Sanitize clamps session values to usable minimums.
func (c *SessionConfig) Sanitize() {
	if c.Store == "" {
		c.Store = SessionStoreRedis
	}
	if c.TTL <= 0 {
		c.TTL = defaultSessionTTL
	} else if c.TTL < minSessionTTL {
		c.TTL = minSessionTTL
	}
	if c.RefreshInterval < 0 {
		c.RefreshInterval = defaultRefreshTime
	}
	if c.CookieName = strings.TrimSpace(c.CookieName); c.CookieName == "" {
		c.CookieName = "session_id"
	}
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
	KeyPrefix          string   `env:"KEY_PREFIX"           envDefault:"session:"`
}

// LoginRateConfig throttles POST /login per client address.
type LoginRateConfig struct {
	// PerMinute is the sustained number of attempts allowed per minute.
	PerMinute int `env:"PER_MINUTE" envDefault:"10"`
	// Burst is the number of attempts allowed at once.
	Burst int `env:"BURST" envDefault:"5"`
}

// Sanitize enforces minimum throttling values.
func (c *LoginRateConfig) Sanitize() {
	if c.PerMinute <= 0 {
		c.PerMinute = 10
	}
	if c.Burst < 1 {
		c.Burst = 1
	}
}
