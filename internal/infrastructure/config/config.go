package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	AnalyticsSinkLog   = "log"
	AnalyticsSinkMongo = "mongo"
)

type Config struct {
	Port          string        `env:"PORT,           default=8080"`
	Env           string        `env:"ENV,            default=development"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=2h"`
	SessionStore  string        `env:"SESSION_STORE,  default=memory"`

	Redis     RedisConfig
	Mongo     MongoConfig
	Analytics AnalyticsConfig
	Handoff   HandoffConfig
	RateLimit RateLimitConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dispatch_widget"`
}

type AnalyticsConfig struct {
	Sink    string `env:"ANALYTICS_SINK,    default=log"`
	Workers int    `env:"ANALYTICS_WORKERS, default=4"`
}

type HandoffConfig struct {
	Host           string `env:"HANDOFF_HOST,            default=wa.me"`
	Recipient      string `env:"HANDOFF_RECIPIENT,       default=2349096673176"`
	FallbackAnchor string `env:"HANDOFF_FALLBACK_ANCHOR, default=contact"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS,   default=10"`
	Burst int     `env:"RATE_LIMIT_BURST, default=20"`
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool { return c.Env == "production" }

// Load reads configuration from environment variables using go-envconfig
// and validates the result.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.SessionSecret == "" {
		if c.IsProduction() {
			errs = append(errs, errors.New("SESSION_SECRET is required in production"))
		} else {
			c.SessionSecret = "dev-session-secret"
		}
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	switch c.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		errs = append(errs, fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStoreMemory, SessionStoreRedis, c.SessionStore))
	}
	switch c.Analytics.Sink {
	case AnalyticsSinkLog, AnalyticsSinkMongo:
	default:
		errs = append(errs, fmt.Errorf("ANALYTICS_SINK must be %q or %q, got %q", AnalyticsSinkLog, AnalyticsSinkMongo, c.Analytics.Sink))
	}
	if c.Analytics.Workers <= 0 {
		errs = append(errs, fmt.Errorf("ANALYTICS_WORKERS must be positive, got %d", c.Analytics.Workers))
	}
	if c.Handoff.Host == "" || c.Handoff.Recipient == "" {
		errs = append(errs, errors.New("HANDOFF_HOST and HANDOFF_RECIPIENT are required"))
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool { return c.SessionStore == SessionStoreRedis }

// UsesMongo reports whether any component needs a Mongo connection.
func (c *Config) UsesMongo() bool { return c.Analytics.Sink == AnalyticsSinkMongo }
