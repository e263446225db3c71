// Package config loads storefront settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds everything the storefront needs to reach the API and log.
type Config struct {
	Origin      string        `env:"API_ORIGIN,default=https://larek-api.nomoreparties.co"`
	APIPath     string        `env:"LAREK_API_PATH,default=/api/weblarek"`
	CDNPath     string        `env:"LAREK_CDN_PATH,default=/content/weblarek"`
	HTTPTimeout time.Duration `env:"LAREK_HTTP_TIMEOUT,default=30s"`
	LogLevel    string        `env:"LAREK_LOG_LEVEL,default=info"`
	Development bool          `env:"DEVELOPMENT,default=false"`
	TraceEvents bool          `env:"LAREK_TRACE_EVENTS,default=false"`
}

// APIURL is the base URL of the product and order endpoints.
func (c Config) APIURL() string {
	return strings.TrimRight(c.Origin, "/") + c.APIPath
}

// CDNURL is the base URL of product images.
func (c Config) CDNURL() string {
	return strings.TrimRight(c.Origin, "/") + c.CDNPath
}

// Load reads envFile (if it exists) into the process environment and decodes
// the result. Variables already set take precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Origin == "" {
		return errors.New("API_ORIGIN must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("LAREK_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LAREK_LOG_LEVEL: %w", err)
	}
	return nil
}

// NewLogger builds a production logger, or a development one when
// Development is set, at the configured level.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
