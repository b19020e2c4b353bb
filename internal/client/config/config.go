package config

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds runtime settings for the Conduit CLI.
type Config struct {
	APIURL         string
	DBPath         string
	PageSize       int
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "https://api.realworld.io"
	c.DBPath = "conduit.db"
	c.PageSize = 10
	c.LogLevel = "info"
	c.RequestTimeout = 0
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	switch {
	case c.APIURL == "":
		return fmt.Errorf("%w: api url is empty", ErrInvalidConfig)
	case c.DBPath == "":
		return fmt.Errorf("%w: database path is empty", ErrInvalidConfig)
	case c.PageSize < 1:
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidConfig, c.PageSize)
	case c.RequestTimeout < 0:
		return fmt.Errorf("%w: negative request timeout", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then overlays the JSON file,
// the environment and the flags found in args (os.Args[1:] in production).
// Later sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
