// Package config loads application configuration from the environment and an
// optional yaml file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Coding   CodingConfig   `mapstructure:"coding"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds the allowed-origin list. Empty means allow all.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CodingConfig carries the clinical coding defaults applied to events that
// arrive without an explicit system/code pair, keyed by event type.
type CodingConfig struct {
	Systems map[string]models.Coding `mapstructure:"systems"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("database.max_conns", 8)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("coding.systems", defaultCodingSystems())

	v.SetEnvPrefix("HEALTHLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Common unprefixed variables keep working.
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.url", "DATABASE_URL")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// A missing config file is fine; the environment is enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks configuration coherence. The database URL is checked at
// startup by the commands that need it, since the in-memory store runs
// without one.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must not be empty")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be at least 1")
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be between 0 and max_conns")
	}
	for et := range c.Coding.Systems {
		if !models.EventType(et).Valid() {
			return fmt.Errorf("coding.systems: unknown event type %q", et)
		}
	}
	return nil
}

// defaultCodingSystems maps each event type to a sensible clinical code.
func defaultCodingSystems() map[string]map[string]string {
	return map[string]map[string]string{
		"migraine":   {"system": "http://snomed.info/sct", "code": "37796009"},
		"stress":     {"system": "http://snomed.info/sct", "code": "73595000"},
		"sleep":      {"system": "http://loinc.org", "code": "93832-4"},
		"meal":       {"system": "http://snomed.info/sct", "code": "226379006"},
		"exercise":   {"system": "http://snomed.info/sct", "code": "256235009"},
		"medication": {"system": "http://snomed.info/sct", "code": "432102000"},
	}
}
