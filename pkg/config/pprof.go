package config

import "net"

// PProfConfig enables the net/http/pprof endpoints on their own listener.
type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

func (c *PProfConfig) String() string {
	return newSection("PProf").add("enabled", c.Enabled).add("address", c.Addr).String()
}

func (c *PProfConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Addr == "" {
		return invalid("pprof.addr", "required when pprof is enabled")
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return invalid("pprof.addr", "%v", err)
	}
	return nil
}
