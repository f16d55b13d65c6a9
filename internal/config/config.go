package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"OpenAudit API"`
		Port int    `envconfig:"PORT" default:"8000"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"openaudit"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	CORS struct {
		Origins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	}

	LLM struct {
		AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
		OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	}

	Ingest struct {
		BatchSize int `envconfig:"INGEST_BATCH_SIZE" default:"100"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

// HasProviderCredentials reports whether any analysis provider key is configured.
func (c *Config) HasProviderCredentials() bool {
	return c.LLM.AnthropicAPIKey != "" || c.LLM.OpenAIAPIKey != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Ingest.BatchSize <= 0 {
		return nil, fmt.Errorf("invalid INGEST_BATCH_SIZE %d: must be positive", cfg.Ingest.BatchSize)
	}

	return &cfg, nil
}
