package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.False(t, cfg.UseMemoryStore())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DATABASE_URL", "memory")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.test,https://b.test")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.True(t, cfg.UseMemoryStore())
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
}

func TestTokenTTLSeconds(t *testing.T) {
	t.Setenv("TOKEN_TTL", "3600")
	assert.Equal(t, time.Hour, Load().TokenTTL)

	t.Setenv("TOKEN_TTL", "garbage")
	assert.Equal(t, 24*time.Hour, Load().TokenTTL)
}
