package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/ratehub")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Hour, cfg.JWTExpiry)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "./data/files", cfg.FileStoragePath)
	assert.Equal(t, int64(10<<20), cfg.UploadMaxBytes)
	assert.Equal(t, 10, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.True(t, cfg.PrometheusEnabled)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, int64(1<<20), cfg.UploadMaxBytes)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfigInvalidValues(t *testing.T) {
	setRequiredEnv(t)

	t.Run("BadInt", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "not-a-port")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("BadDuration", func(t *testing.T) {
		t.Setenv("JWT_EXPIRY", "ten hours")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("BadBool", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "maybe")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPPort:       8080,
			JWTSecret:      "0123456789abcdef0123456789abcdef",
			LogLevel:       "info",
			LogFormat:      "text",
			RateLimitRPS:   10,
			RateLimitBurst: 20,
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("ShortSecret", func(t *testing.T) {
		c := valid()
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		c := valid()
		c.LogLevel = "verbose"
		assert.Error(t, c.Validate())
	})

	t.Run("BurstBelowRPS", func(t *testing.T) {
		c := valid()
		c.RateLimitBurst = 5
		assert.Error(t, c.Validate())
	})

	t.Run("PortOutOfRange", func(t *testing.T) {
		c := valid()
		c.HTTPPort = 70000
		assert.Error(t, c.Validate())
	})
}
