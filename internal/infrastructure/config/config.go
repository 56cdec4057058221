package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret falls back to a fixed literal so the server boots without
	// any environment. Known weakness: override it in any real deployment.
	JWTSecret string `env:"JWT_SECRET, default=crmpro-secret-key-change-me"`

	// DataFile is the JSON document holding all persisted state.
	DataFile string `env:"DATA_FILE, default=db.json"`

	// AppURL is the frontend base URL embedded in verification links.
	AppURL string `env:"APP_URL, default=http://localhost:3000"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
