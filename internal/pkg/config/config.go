package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth      AuthConfig
	RateLimit RateLimitConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

type AuthConfig struct {
	// JWTSecret signs access tokens; JWTRefreshSecret signs refresh tokens.
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL,   default=120h"`
	RefreshAccessTTL time.Duration `env:"REFRESH_ACCESS_TTL, default=15m"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL,  default=720h"`
	// TokenMaxAge is the freshness bound applied to sensitive routes.
	TokenMaxAge time.Duration `env:"TOKEN_MAX_AGE, default=15m"`
}

type RateLimitConfig struct {
	Window      time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
	MaxAttempts int           `env:"RATE_LIMIT_MAX,    default=20"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=waste_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsTest reports whether the process runs in test mode, where the auth rate
// limiter is disabled.
func (c *Config) IsTest() bool { return c.Env == "test" }

// IsDevelopment gates verbose error responses.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
