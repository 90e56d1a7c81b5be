package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Log      Log
	HTTP     HTTP
	Database Database
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"results-api"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format string     `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads the process environment once at startup. A .env file in the
// working directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return Config{}, fmt.Errorf("database.Validate: %w", err)
	}

	return config, nil
}
