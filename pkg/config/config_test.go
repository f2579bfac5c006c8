package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("RATE_LIMIT_REQUESTS", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")
	t.Setenv("NATS_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 0, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.RateLimitEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/tasks.db")
	t.Setenv("RATE_LIMIT_REQUESTS", "30")
	t.Setenv("RATE_LIMIT_WINDOW", "10s")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("LOG_MAX_SIZE", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/tasks.db", cfg.Database.Path)
	assert.Equal(t, 30, cfg.RateLimit.Requests)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.Log.MaxSize, "malformed numbers fall back to the default")
	assert.True(t, cfg.RateLimitEnabled())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "postgres", mutate: func(c *Config) {}},
		{name: "sqlite", mutate: func(c *Config) { c.Database.Driver = "sqlite" }},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "limit without window", mutate: func(c *Config) {
			c.RateLimit.Requests = 5
			c.RateLimit.Window = 0
		}, wantErr: true},
		{name: "window ignored when disabled", mutate: func(c *Config) { c.RateLimit.Window = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Database:  DatabaseConfig{Driver: "postgres"},
				RateLimit: RateLimitConfig{Window: time.Minute},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
