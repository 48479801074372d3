package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// RetryConfig настройки повторной генерации алиаса при коллизии
type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS"`
}

// Config конфигурация приложения.
// Значения берутся из флагов, переменные окружения имеют приоритет над флагами
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	RedisAddr       string         `env:"REDIS_ADDR"`
	CacheTTL        time.Duration  `env:"CACHE_TTL"`
	LogLevel        string         `env:"LOG_LEVEL"`
	AliasLength     int            `env:"ALIAS_LENGTH"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`
	Retry           RetryConfig
}

// NewDefaultConfig возвращает конфигурацию по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 3000},
		CacheTTL:        24 * time.Hour,
		LogLevel:        "info",
		AliasLength:     9,
		ShutdownTimeout: 10 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 5,
		},
	}
}

// Load собирает конфигурацию из аргументов командной строки и окружения процесса
func Load() (*Config, error) {
	return load(os.Args[1:], env.ToMap(os.Environ()))
}

// load порядок приоритета адреса: SERVER_ADDRESS > -a > PORT > значение по умолчанию
func load(args []string, environ map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server (host:port)")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to the file storage")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL connection string")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address for the resolve cache")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	addressFlagSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "a" {
			addressFlagSet = true
		}
	})

	if port, ok := environ["PORT"]; ok && port != "" && !addressFlagSet {
		value, err := parsePort(port)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PORT: %w", err)
		}
		cfg.ServerAddress = NetworkAddress{Port: value}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var errs []error

	if c.AliasLength <= 0 {
		errs = append(errs, fmt.Errorf("alias length must be positive, got %d", c.AliasLength))
	}
	if c.Retry.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("retry max attempts must be positive, got %d", c.Retry.MaxAttempts))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("cache TTL must not be negative, got %s", c.CacheTTL))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
