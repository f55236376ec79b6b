package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var httpEnvVars = []string{
	"HTTP_SERVER_HOST", "HOST", "HTTP_SERVER_PORT", "PORT", "HTTP_SERVER_READ_TIMEOUT",
	"HTTP_SERVER_READ_HEADER_TIMEOUT", "HTTP_SERVER_WRITE_TIMEOUT", "HTTP_SERVER_IDLE_TIMEOUT",
	"HTTP_SERVER_SHUTDOWN_TIMEOUT", "RATE_LIMIT_GLOBAL_REQUESTS", "RATE_LIMIT_GLOBAL_WINDOW",
	"RATE_LIMIT_REQUESTS_PER_IP", "RATE_LIMIT_IP_WINDOW", "CORS_ALLOWED_ORIGINS",
	"CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS", "CORS_EXPOSED_HEADERS",
	"CORS_ALLOW_CREDENTIALS", "CORS_MAX_AGE",
}

func TestLoadHttp_Defaults(t *testing.T) {
	unsetEnv(t, append(baseEnvVars, httpEnvVars...)...)

	cfg, err := LoadHttp()

	require.NoError(t, err)
	assert.Equal(t, HttpServerConfig{
		Host:              "0.0.0.0",
		Port:              8080,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ShutdownTimeout:   30 * time.Second,
	}, cfg.Server)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, RateLimitConfig{GlobalRequests: 1000, GlobalWindow: time.Minute, RequestsPerIP: 100, IPWindow: time.Minute}, cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST", "DELETE", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.False(t, cfg.CORS.AllowCredentials)
	assert.Equal(t, 86400, cfg.CORS.MaxAge)
}

func TestLoadHttp_FromEnvironment(t *testing.T) {
	unsetEnv(t, append(baseEnvVars, httpEnvVars...)...)
	t.Setenv("HTTP_SERVER_HOST", "127.0.0.1")
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_IP", "20")
	t.Setenv("RATE_LIMIT_IP_WINDOW", "10s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	cfg, err := LoadHttp()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerIP)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.IPWindow)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
}

func TestLoadHttp_PortFallback(t *testing.T) {
	unsetEnv(t, append(baseEnvVars, httpEnvVars...)...)
	t.Setenv("PORT", "3000")

	cfg, err := LoadHttp()

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadHttp_Invalid(t *testing.T) {
	tests := map[string]string{
		"HTTP_SERVER_PORT":           "99999",
		"RATE_LIMIT_REQUESTS_PER_IP": "0",
		"CORS_MAX_AGE":               "a day",
		"HTTP_SERVER_WRITE_TIMEOUT":  "0s",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			unsetEnv(t, append(baseEnvVars, httpEnvVars...)...)
			t.Setenv(key, value)

			cfg, err := LoadHttp()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
