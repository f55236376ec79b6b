package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redisEnvVars = []string{
	"REDIS_URL", "REDIS_KEY_PREFIX", "REDIS_CONNECT_ATTEMPTS", "REDIS_CONNECT_DELAY", "REDIS_PING_TIMEOUT",
	"URL", "KEY_PREFIX", "CONNECT_ATTEMPTS", "CONNECT_DELAY", "PING_TIMEOUT",
}

func TestLoadRedis_Defaults(t *testing.T) {
	unsetEnv(t, append(baseEnvVars, redisEnvVars...)...)

	cfg, err := LoadRedis()

	require.NoError(t, err)
	assert.Equal(t, RedisConnConfig{
		URL:             "redis://localhost:6379/0",
		KeyPrefix:       "constraintsvc",
		ConnectAttempts: 5,
		ConnectDelay:    time.Second,
		PingTimeout:     3 * time.Second,
	}, cfg.Redis)
}

func TestLoadRedis_FromEnvironment(t *testing.T) {
	unsetEnv(t, append(baseEnvVars, redisEnvVars...)...)
	t.Setenv("REDIS_URL", "redis://:secret@cache.internal:6380/2")
	t.Setenv("REDIS_KEY_PREFIX", "staging")

	cfg, err := LoadRedis()

	require.NoError(t, err)
	assert.Equal(t, "redis://:secret@cache.internal:6380/2", cfg.Redis.URL)
	assert.Equal(t, "staging", cfg.Redis.KeyPrefix)
}

func TestLoadRedis_Invalid(t *testing.T) {
	tests := map[string]string{
		"REDIS_URL":              "not a url",
		"REDIS_KEY_PREFIX":       "",
		"REDIS_CONNECT_ATTEMPTS": "0",
		"REDIS_PING_TIMEOUT":     "0s",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			unsetEnv(t, append(baseEnvVars, redisEnvVars...)...)
			t.Setenv(key, value)

			cfg, err := LoadRedis()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
