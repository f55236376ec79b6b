package config

import (
	"fmt"
	"strings"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type ValidationConfig struct {
	BaseConfig
	Engine EngineConfig `envconfig:"VALIDATION"`
	Store  string       `envconfig:"SCHEMA_STORE" default:"memory"`
}

type EngineConfig struct {
	FullMessages     bool  `envconfig:"FULL_MESSAGES" default:"true"`
	MaxDocumentBytes int64 `envconfig:"MAX_DOCUMENT_BYTES" default:"1048576"`
}

func LoadValidation() (*ValidationConfig, error) {
	var cfg ValidationConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}

	cfg.Store = strings.ToLower(cfg.Store)
	switch cfg.Store {
	case StoreMemory, StorePostgres, StoreRedis:
	default:
		return nil, fmt.Errorf("unsupported schema store %q: want %s, %s or %s", cfg.Store, StoreMemory, StorePostgres, StoreRedis)
	}
	if cfg.Engine.MaxDocumentBytes <= 0 {
		return nil, fmt.Errorf("VALIDATION_MAX_DOCUMENT_BYTES must be positive, got %d", cfg.Engine.MaxDocumentBytes)
	}
	return &cfg, nil
}

