package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "2.0", cfg.Server.Version)
	assert.Equal(t, "gemini", cfg.Model.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model.Name)
	assert.Equal(t, []string{"gemini-1.5-flash", "gemini-pro"}, cfg.Model.FallbackModels)
	assert.InDelta(t, 0.7, cfg.Model.Temperature, 0.0001)
	assert.InDelta(t, 0.9, cfg.Model.TopP, 0.0001)
	assert.Equal(t, 20*time.Second, cfg.Model.Timeout)
	assert.Equal(t, ClosingAcknowledge, cfg.Responder.Closing)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "hi", cfg.I18n.DefaultLanguage)
	assert.True(t, cfg.Monitoring.Metrics.Enabled)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
model:
  provider: openai
  base_url: http://localhost:11434/v1
  name: llama3
  timeout: 5s
responder:
  closing: heuristic
cache:
  enabled: true
  type: redis
`), 0o644))

	t.Setenv("MODEL_API_KEY", "secret")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Model.Provider)
	assert.Equal(t, "llama3", cfg.Model.Name)
	assert.Equal(t, "secret", cfg.Model.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Model.Timeout)
	assert.Equal(t, ClosingHeuristic, cfg.Responder.Closing)
	assert.Equal(t, "redis.internal:6379", cfg.Cache.Redis.Addr)
}

func TestLoadConfig_GoogleAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "g-key", cfg.Model.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model.Name)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Server.Port = 5000
		cfg.Model.Provider = "gemini"
		cfg.Model.Timeout = time.Second
		cfg.Responder.Closing = ClosingAcknowledge
		cfg.Cache.Type = "memory"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad provider", func(c *Config) { c.Model.Provider = "palm" }},
		{"openai without base url", func(c *Config) { c.Model.Provider = "openai" }},
		{"zero timeout", func(c *Config) { c.Model.Timeout = 0 }},
		{"bad closing", func(c *Config) { c.Responder.Closing = "shrug" }},
		{"bad cache type", func(c *Config) { c.Cache.Type = "memcached" }},
		{"telegram without token", func(c *Config) { c.Telegram.Enabled = true }},
	}

	require.NoError(t, validateConfig(valid()))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}
