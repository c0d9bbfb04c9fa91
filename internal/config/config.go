// /internal/config/config.go
package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config holds all runtime settings, parsed from the environment.
type Config struct {
	StoragePath string `env:"AURELIA_STORAGE_PATH" envDefault:"data/aurelia.json"`
	SyncURL     string `env:"AURELIA_SYNC_URL"`
	SyncSalt    string `env:"AURELIA_SYNC_SALT" envDefault:"sparky-aurelia"`
	LogPath     string `env:"AURELIA_LOG_PATH"`
	LogLevel    string `env:"AURELIA_LOG_LEVEL" envDefault:"info"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse environment: %v", err)
	}
	return cfg
}
