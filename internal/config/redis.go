package config

import "time"

type RedisConfig struct {
	BaseConfig
	Redis RedisConnConfig `envconfig:"REDIS"`
}

// RedisConnConfig reads REDIS_*. URL follows redis://[user:password@]host:port/db.
type RedisConnConfig struct {
	URL             string        `envconfig:"URL" default:"redis://localhost:6379/0" validate:"required,url"`
	KeyPrefix       string        `envconfig:"KEY_PREFIX" default:"constraintsvc" validate:"required"`
	ConnectAttempts uint          `envconfig:"CONNECT_ATTEMPTS" default:"5" validate:"gte=1"`
	ConnectDelay    time.Duration `envconfig:"CONNECT_DELAY" default:"1s"`
	PingTimeout     time.Duration `envconfig:"PING_TIMEOUT" default:"3s" validate:"gt=0"`
}

func LoadRedis() (*RedisConfig, error) {
	var cfg RedisConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
