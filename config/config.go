package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration.
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	JWT           JWTConfig           `yaml:"jwt"`
	FieldService  FieldServiceConfig  `yaml:"field_service"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// HTTPConfig holds the HTTP listener configuration.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration. An empty URL disables notification
// publishing.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// JWTConfig holds identity token configuration.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// FieldServiceConfig holds the field service adapter configuration.
type FieldServiceConfig struct {
	URL               string  `yaml:"url"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// ObservabilityConfig holds observability settings.
type ObservabilityConfig struct {
	Environment string `yaml:"environment"`
}

// LoadConfig loads the configuration from a YAML file, then applies
// environment variable overrides. A missing file is not an error; the
// environment alone can configure the service.
func LoadConfig(filename string) (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{Addr: ":8080"},
		JWT:  JWTConfig{DefaultTTL: 24 * time.Hour},
	}

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("FIELD_SERVICE_URL"); v != "" {
		cfg.FieldService.URL = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Observability.Environment = v
	}

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required (postgres.dsn or DATABASE_URL)")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is required (jwt.secret or JWT_SECRET)")
	}

	return cfg, nil
}
