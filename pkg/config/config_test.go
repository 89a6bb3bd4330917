package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "testdb")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("CLIENT_URL", "https://blog.example.com")
	t.Setenv("MAX_UPLOAD_SIZE", "1024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "cache", cfg.RedisHost)
	assert.Equal(t, "6380", cfg.RedisPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "https://blog.example.com", cfg.ClientURL)
	assert.Equal(t, int64(1024), cfg.MaxUploadSize)
	assert.True(t, cfg.HasJWTSecret())
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY", "not-a-duration")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadSize)
	assert.False(t, cfg.HasJWTSecret())
}
