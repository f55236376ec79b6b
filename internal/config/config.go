package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"constraintsvc/internal/platform/logger"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info"`
	Format logger.Format `envconfig:"FORMAT" default:"json"`
}

var structValidator = validator.New()

// load fills cfg from the environment and checks its `validate` tags.
func load(cfg any) error {
	if err := envconfig.Process("", cfg); err != nil {
		return err
	}
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func LoadBase() (*BaseConfig, error) {
	var cfg BaseConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *BaseConfig) LoggerConfig() logger.Config {
	return logger.Config{
		Environment: c.Environment,
		Level:       c.Logger.Level,
		Format:      c.Logger.Format,
	}
}

func (c *BaseConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, EnvDevelopment)
}

func (c *BaseConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

func (c *BaseConfig) IsStaging() bool {
	return strings.EqualFold(c.Environment, EnvStaging)
}

func (c *BaseConfig) IsTest() bool {
	return strings.EqualFold(c.Environment, EnvTest)
}
