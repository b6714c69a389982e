package config

import (
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DatabaseConfig struct {
	// Driver is postgres (default) or memory.
	Driver  string        `koanf:"driver"`
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// String renders the configuration with credentials masked.
func (c *DatabaseConfig) String() string {
	return newSection("Database").
		add("driver", c.Driver).
		add("url", MaskURL(c.URL)).
		add("timeout", c.Timeout).
		String()
}

func (c *DatabaseConfig) Validate() error {
	if c.Driver == "" {
		c.Driver = DriverPostgres
	}
	switch c.Driver {
	case DriverMemory:
		return nil
	case DriverPostgres:
	default:
		return invalid("database.driver", "unsupported driver %q", c.Driver)
	}
	if c.URL == "" {
		return invalid("database.url", "not configured")
	}
	if !strings.HasPrefix(c.URL, "postgres://") && !strings.HasPrefix(c.URL, "postgresql://") {
		return invalid("database.url", "must start with 'postgres://', got %s", MaskURL(c.URL))
	}
	if c.Timeout <= 0 {
		return invalid("database.timeout", "must be positive, got %v", c.Timeout)
	}
	return nil
}

// MaskURL hides the user info part of a connection URL.
func MaskURL(url string) string {
	if url == "" {
		return "<not configured>"
	}
	if i := strings.LastIndex(url, "@"); i >= 0 {
		return "****@" + url[i+1:]
	}
	return "****"
}
