package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"FORESIGHT_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"FORESIGHT_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"FORESIGHT_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Cache CacheConfig
	Redis RedisConfig
}

// CacheConfig controls memoization of derived metrics.
type CacheConfig struct {
	Enabled bool          `env:"FORESIGHT_CACHE_ENABLED" envDefault:"true"`
	TTL     time.Duration `env:"FORESIGHT_CACHE_TTL" envDefault:"10m"`
}

// RedisConfig points the metrics cache at Redis. An empty URL keeps the cache
// in process memory.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
