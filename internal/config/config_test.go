package config

import (
	"testing"

	"github.com/sid-c23/cs6440-project/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("server.port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("server.env = %q, want development", cfg.Server.Env)
	}
	if cfg.Database.MaxConns != 8 || cfg.Database.MinConns != 2 {
		t.Errorf("pool bounds = %d/%d, want 8/2", cfg.Database.MaxConns, cfg.Database.MinConns)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log config = %q/%q, want info/json", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HEALTHLOG_SERVER_PORT", "9090")
	t.Setenv("HEALTHLOG_LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://localhost/healthlog")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("server.port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Database.URL != "postgres://localhost/healthlog" {
		t.Errorf("database.url = %q, want DATABASE_URL value", cfg.Database.URL)
	}
}

func TestDefaultCodingCoversEveryEventType(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	for _, et := range models.EventTypes {
		c, ok := cfg.Coding.Systems[string(et)]
		if !ok {
			t.Errorf("no coding default for event type %q", et)
			continue
		}
		if c.System == "" || c.Code == "" {
			t.Errorf("coding default for %q is incomplete: %+v", et, c)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"zero max conns", func(c *Config) { c.Database.MaxConns = 0 }, true},
		{"min above max", func(c *Config) { c.Database.MinConns = 99 }, true},
		{"unknown coding key", func(c *Config) {
			c.Coding.Systems = map[string]models.Coding{"headache": {System: "s", Code: "c"}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Server:   ServerConfig{Port: "8080", Env: "test"},
				Database: DatabaseConfig{MaxConns: 8, MinConns: 2},
			}
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
