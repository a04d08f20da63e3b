package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret has no default on purpose: running with a guessable
	// signing secret is a configuration error, not a degraded mode.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Apify  ApifyConfig
	Github GithubConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=outreach"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ApifyConfig struct {
	APIToken string `env:"APIFY_API_TOKEN"`
	ActorID  string `env:"APIFY_ACTOR_ID"`
	// SyncTimeout bounds a whole actor run, queue time included.
	SyncTimeout    time.Duration `env:"APIFY_SYNC_TIMEOUT, default=5m"`
	LinkedinCookie string        `env:"LINKEDIN_COOKIE"`
}

type GithubConfig struct {
	Token string `env:"GITHUB_TOKEN"`
}

// Load reads configuration from environment variables and validates the
// settings the process cannot run without.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.Apify.APIToken == "" {
		return nil, errors.New("APIFY_API_TOKEN must be set")
	}

	return &cfg, nil
}
