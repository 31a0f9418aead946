package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Cache struct {
		TTL duration
	}
	Mock struct {
		// Enabled serves reads from the in-process sample data instead of
		// the database. Defaults to true so the server runs without Postgres.
		Enabled bool
	}
}

// duration lets TTL be written as "5m" in the TOML file.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// ApplyMockMode resolves the mock switch. A flag passed on the command line
// (or its env var) wins; otherwise the config file's value applies; when the
// file does not mention it either, mock mode defaults to enabled so the
// server runs without Postgres.
func (c *Config) ApplyMockMode(meta toml.MetaData, flagSet, flagValue bool) {
	switch {
	case flagSet:
		c.Mock.Enabled = flagValue
	case !meta.IsDefined("Mock", "Enabled"):
		c.Mock.Enabled = true
	}
}

// CacheTTL returns the configured cache TTL, falling back to 5 minutes.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTL.Duration <= 0 {
		return 5 * time.Minute
	}
	return c.Cache.TTL.Duration
}
