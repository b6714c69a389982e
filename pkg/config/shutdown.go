package config

import "time"

const defaultShutdownTimeout = 15 * time.Second

// ShutdownConfig bounds how long each server may take to drain on exit.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *ShutdownConfig) String() string {
	return newSection("Shutdown").add("timeout", c.Timeout).String()
}

func (c *ShutdownConfig) Validate() error {
	switch {
	case c.Timeout < 0:
		return invalid("shutdown.timeout", "must not be negative, got %v", c.Timeout)
	case c.Timeout == 0:
		c.Timeout = defaultShutdownTimeout
	}
	return nil
}
