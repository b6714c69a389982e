package config

import "strings"

const defaultMetricsPath = "/metrics"

// MetricsConfig exposes Prometheus metrics on the HTTP server at Path.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

func (c *MetricsConfig) String() string {
	return newSection("Metrics").add("enabled", c.Enabled).add("path", c.Path).String()
}

func (c *MetricsConfig) Validate() error {
	if c.Path == "" {
		c.Path = defaultMetricsPath
	}
	if !strings.HasPrefix(c.Path, "/") {
		return invalid("metrics.path", "must start with '/', got %q", c.Path)
	}
	return nil
}
