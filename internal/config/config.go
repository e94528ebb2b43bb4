package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds runtime settings for the userreg CLI.
type Config struct {
	DatabaseFile string
	LogLevel     string
	BusyTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseFile = "users.db"
	c.LogLevel = "info"
	c.BusyTimeout = 5 * time.Second
}

// DSN renders the modernc.org/sqlite data source name for DatabaseFile.
// The path is percent-escaped so '#', '?' and '%' in file names reach SQLite intact.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "file",
		Opaque:   url.PathEscape(c.DatabaseFile),
		RawQuery: fmt.Sprintf("_pragma=busy_timeout(%d)", c.BusyTimeout.Milliseconds()),
	}
	return u.String()
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
