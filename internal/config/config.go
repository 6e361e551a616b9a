// Package config loads the application settings from the environment. A
// .env file in the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Card store backends.
const (
	StoreMemory  = "memory"
	StoreFile    = "file"
	StoreSurreal = "surreal"
)

// Provider exposes the settings to the rest of the application.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetEmailSender() string
	GetLogFormat() string
	GetLogLevel() string
	GetCardStore() string
	GetCardStoreDir() string
	GetSimulatedLatency() time.Duration
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBQueryTimeout() time.Duration
	GetDBExecuteTimeout() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr          string        `env:"APP_ADDR" envDefault:":8080"`
	AppBaseURL       string        `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	SessionSecret    string        `env:"SESSION_SECRET" envDefault:"nexcard-development-session-secret"`
	EmailSender      string        `env:"EMAIL_SENDER" envDefault:"NexCard <no-reply@nexcard.local>"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	CardStore        string        `env:"CARD_STORE" envDefault:"memory"`
	CardStoreDir     string        `env:"CARD_STORE_DIR" envDefault:"data/cards"`
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY" envDefault:"0s"`

	DBURL            string        `env:"SURREAL_URL"`
	DBNs             string        `env:"SURREAL_NS" envDefault:"nexcard"`
	DBDb             string        `env:"SURREAL_DB" envDefault:"nexcard"`
	DBUser           string        `env:"SURREAL_USER" envDefault:"root"`
	DBPass           string        `env:"SURREAL_PASS"`
	DBQueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"5s"`
	DBExecuteTimeout time.Duration `env:"DB_EXECUTE_TIMEOUT" envDefault:"10s"`
}

// New loads .env (if any) and parses the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that depend on each other.
func (c *Config) Validate() error {
	var errs []error
	switch c.CardStore {
	case StoreMemory, StoreFile:
	case StoreSurreal:
		if c.DBURL == "" || c.DBNs == "" || c.DBDb == "" {
			errs = append(errs, errors.New("CARD_STORE=surreal requires SURREAL_URL, SURREAL_NS and SURREAL_DB"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CARD_STORE %q", c.CardStore))
	}
	if c.CardStore == StoreFile && c.CardStoreDir == "" {
		errs = append(errs, errors.New("CARD_STORE=file requires CARD_STORE_DIR"))
	}
	if len(c.SessionSecret) < 16 {
		errs = append(errs, errors.New("SESSION_SECRET must be at least 16 characters"))
	}
	if c.SimulatedLatency < 0 {
		errs = append(errs, errors.New("SIMULATED_LATENCY must not be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) GetAppAddr() string                 { return c.AppAddr }
func (c *Config) GetAppBaseURL() string              { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string           { return c.SessionSecret }
func (c *Config) GetEmailSender() string             { return c.EmailSender }
func (c *Config) GetLogFormat() string               { return c.LogFormat }
func (c *Config) GetLogLevel() string                { return c.LogLevel }
func (c *Config) GetCardStore() string               { return c.CardStore }
func (c *Config) GetCardStoreDir() string            { return c.CardStoreDir }
func (c *Config) GetSimulatedLatency() time.Duration { return c.SimulatedLatency }
func (c *Config) GetDBURL() string                   { return c.DBURL }
func (c *Config) GetDBNs() string                    { return c.DBNs }
func (c *Config) GetDBDb() string                    { return c.DBDb }
func (c *Config) GetDBUser() string                  { return c.DBUser }
func (c *Config) GetDBPass() string                  { return c.DBPass }
func (c *Config) GetDBQueryTimeout() time.Duration   { return c.DBQueryTimeout }
func (c *Config) GetDBExecuteTimeout() time.Duration { return c.DBExecuteTimeout }
