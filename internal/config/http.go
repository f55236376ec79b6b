package config

import (
	"net"
	"strconv"
	"time"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
}

// HttpServerConfig reads HTTP_SERVER_*; HOST and PORT are honoured as
// fallbacks for platforms that inject them.
type HttpServerConfig struct {
	Host              string        `envconfig:"HOST" default:"0.0.0.0"`
	Port              int           `envconfig:"PORT" default:"8080" validate:"min=0,max=65535"`
	ReadTimeout       time.Duration `envconfig:"READ_TIMEOUT" default:"30s" validate:"gt=0"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"10s" validate:"gt=0"`
	WriteTimeout      time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s" validate:"gt=0"`
	IdleTimeout       time.Duration `envconfig:"IDLE_TIMEOUT" default:"2m" validate:"gt=0"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s" validate:"gt=0"`
}

func (c HttpServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type RateLimitConfig struct {
	GlobalRequests int           `envconfig:"GLOBAL_REQUESTS" default:"1000" validate:"gt=0"`
	GlobalWindow   time.Duration `envconfig:"GLOBAL_WINDOW" default:"1m" validate:"gt=0"`
	RequestsPerIP  int           `envconfig:"REQUESTS_PER_IP" default:"100" validate:"gt=0"`
	IPWindow       time.Duration `envconfig:"IP_WINDOW" default:"1m" validate:"gt=0"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type,X-Request-Id"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:""`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400" validate:"gte=0"`
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
