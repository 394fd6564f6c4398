package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Networth"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"networth"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	// Refresh controls the batch fetch cycle and staleness reporting.
	Refresh struct {
		StaleThresholdDays int    `envconfig:"STALE_THRESHOLD_DAYS" default:"7"`
		ImportFolder       string `envconfig:"IMPORT_FOLDER" default:"./imports"`
	}

	Plaid struct {
		Environment  string        `envconfig:"PLAID_ENV" default:"sandbox"`
		ClientID     string        `envconfig:"PLAID_CLIENT_ID"`
		Secret       string        `envconfig:"PLAID_SECRET"`
		AccessTokens []string      `envconfig:"PLAID_ACCESS_TOKENS"`
		Timeout      time.Duration `envconfig:"PLAID_TIMEOUT" default:"30s"`
	}

	SimpleFIN struct {
		AccessURLs []string      `envconfig:"SIMPLEFIN_ACCESS_URLS"`
		Timeout    time.Duration `envconfig:"SIMPLEFIN_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
