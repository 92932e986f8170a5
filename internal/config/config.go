package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress      = ":8080"
	DefaultBackendAddress  = "http://localhost:4000"
	DefaultIdentityAddress = "http://localhost:9099"
	DefaultIdentityAPIKey  = ""
	DefaultPublicOrigin    = "http://localhost:8080"
	DefaultSessionSecret   = "secret"
	DefaultSessionLifetime = 24 * time.Hour
	DefaultRedisAddress    = ""
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	BackendAddress  string        `env:"BACKEND_ADDRESS"`
	IdentityAddress string        `env:"IDENTITY_ADDRESS"`
	IdentityAPIKey  string        `env:"IDENTITY_API_KEY"`
	PublicOrigin    string        `env:"PUBLIC_ORIGIN"`
	SessionSecret   string        `env:"SESSION_SECRET"`
	SessionLifetime time.Duration `env:"SESSION_LIFETIME"`
	RedisAddress    string        `env:"REDIS_ADDRESS"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.BackendAddress, "b", DefaultBackendAddress, "Backend API address protocol://hostname:port")
	flag.StringVar(&config.IdentityAddress, "i", DefaultIdentityAddress, "Identity provider address protocol://hostname:port")
	flag.StringVar(&config.IdentityAPIKey, "k", DefaultIdentityAPIKey, "Identity provider API key")
	flag.StringVar(&config.PublicOrigin, "o", DefaultPublicOrigin, "Public origin used in generated payment links")

	flag.StringVar(&config.SessionSecret, "s", DefaultSessionSecret, "Secret key for session cookie")
	flag.DurationVar(&config.SessionLifetime, "l", DefaultSessionLifetime, "Session lifetime (e.g. 1h, 30m, 24h)")
	flag.StringVar(&config.RedisAddress, "r", DefaultRedisAddress, "Redis address for the session store (empty for in-memory)")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
