package config

import (
	"net"
	"strconv"
	"time"
)

type HTTPConfig struct {
	// Host is empty to listen on every interface.
	Host           string `koanf:"host"`
	Port           int    `koanf:"port"`
	MaxHeaderBytes int    `koanf:"maxHeaderBytes"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"`
		Write      time.Duration `koanf:"write"`
		Idle       time.Duration `koanf:"idle"`
		ReadHeader time.Duration `koanf:"readHeader"`
	} `koanf:"timeout"`
}

// Addr is the listen address built from Host and Port.
func (c *HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *HTTPConfig) String() string {
	return newSection("HTTP Server").
		add("address", c.Addr()).
		add("maxHeaderBytes", c.MaxHeaderBytes).
		add("timeout.read", c.Timeout.Read).
		add("timeout.write", c.Timeout.Write).
		add("timeout.idle", c.Timeout.Idle).
		add("timeout.readHeader", c.Timeout.ReadHeader).
		String()
}

func (c *HTTPConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return invalid("server.port", "must be in 1..65535, got %d", c.Port)
	}
	if c.MaxHeaderBytes < 0 {
		return invalid("server.maxHeaderBytes", "must not be negative, got %d", c.MaxHeaderBytes)
	}
	timeouts := []struct {
		key   string
		value time.Duration
	}{
		{"server.timeout.read", c.Timeout.Read},
		{"server.timeout.write", c.Timeout.Write},
		{"server.timeout.idle", c.Timeout.Idle},
		{"server.timeout.readHeader", c.Timeout.ReadHeader},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			return invalid(t.key, "must be positive, got %v", t.value)
		}
	}
	return nil
}
