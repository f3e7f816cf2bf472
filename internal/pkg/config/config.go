package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Redis   RedisConfig
	Session SessionConfig
}

// BackendConfig points the console at the facility REST API. The default
// matches the backend's development origin.
type BackendConfig struct {
	BaseURL        string `env:"BACKEND_BASE_URL,        default=http://localhost:8000/"`
	TimeoutSeconds int    `env:"BACKEND_TIMEOUT_SECONDS, default=10"`
}

func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisConfig locates the durable token store. An empty Addr selects the
// in-process store (tokens then do not survive a console restart).
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type SessionConfig struct {
	CookieName string `env:"SESSION_COOKIE,      default=orbit_session"`
	TTLMinutes int    `env:"SESSION_TTL_MINUTES, default=60"`
}

func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
