package config

import "time"

// TelemetryConfig controls OTLP/HTTP trace export. Nothing is exported when disabled.
type TelemetryConfig struct {
	Enabled bool         `koanf:"enabled"`
	Traces  TracesConfig `koanf:"traces"`
}

type TracesConfig struct {
	OtlpHttp OtlpHttpConfig `koanf:"otlphttp"`
}

type OtlpHttpConfig struct {
	// Endpoint is host:port of the collector, without scheme.
	Endpoint string        `koanf:"endpoint"`
	Insecure bool          `koanf:"insecure"`
	Timeout  time.Duration `koanf:"timeout"`
}

func (c *TelemetryConfig) String() string {
	otlp := c.Traces.OtlpHttp
	return newSection("Telemetry").
		add("enabled", c.Enabled).
		add("traces.otlphttp.endpoint", otlp.Endpoint).
		add("traces.otlphttp.insecure", otlp.Insecure).
		add("traces.otlphttp.timeout", otlp.Timeout).
		String()
}

func (c *TelemetryConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	otlp := c.Traces.OtlpHttp
	if otlp.Endpoint == "" {
		return invalid("telemetry.traces.otlphttp.endpoint", "required when telemetry is enabled")
	}
	if otlp.Timeout <= 0 {
		return invalid("telemetry.traces.otlphttp.timeout", "must be positive, got %v", otlp.Timeout)
	}
	return nil
}
