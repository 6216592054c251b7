// Package config loads server settings from the environment and an optional
// .env file. Command-line flags override what is loaded here.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration.
type Config struct {
	DBDriver   string
	DBDSN      string
	Addr       string
	BaseURL    string
	LogPath    string
	CookieName string
	SessionTTL time.Duration
}

// Defaults.
const (
	DefaultDBDriver   = "sqlite"
	DefaultDBDSN      = "boxtrack.sqlite3"
	DefaultAddr       = ":8080"
	DefaultCookieName = "ert-sm"
	DefaultSessionTTL = 7 * 24 * time.Hour
)

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then builds an unvalidated Config.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from BOXTRACK_* environment variables. The result
// is not validated; callers apply their overrides and then call Validate.
func FromEnv() (Config, error) {
	cfg := Config{
		DBDriver:   getenv("BOXTRACK_DB_DRIVER", DefaultDBDriver),
		DBDSN:      getenv("BOXTRACK_DB_DSN", DefaultDBDSN),
		Addr:       getenv("BOXTRACK_ADDR", DefaultAddr),
		BaseURL:    os.Getenv("BOXTRACK_BASE_URL"),
		LogPath:    os.Getenv("BOXTRACK_LOG"),
		CookieName: getenv("BOXTRACK_COOKIE", DefaultCookieName),
		SessionTTL: DefaultSessionTTL,
	}

	if v := os.Getenv("BOXTRACK_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BOXTRACK_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported database driver %q (use sqlite or mysql)", c.DBDriver)
	}
	if c.DBDSN == "" {
		return errors.New("database DSN required")
	}
	if c.CookieName == "" {
		return errors.New("cookie name required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base URL %q must be absolute", c.BaseURL)
		}
		c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
