package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validator interface {
	Validate() error
}

func validHTTP() *HTTPConfig {
	c := &HTTPConfig{Port: 8080}
	c.Timeout.Read = time.Second
	c.Timeout.Write = time.Second
	c.Timeout.Idle = time.Second
	c.Timeout.ReadHeader = time.Second
	return c
}

func TestValidate_ReportsField(t *testing.T) {
	noReadHeader := validHTTP()
	noReadHeader.Timeout.ReadHeader = 0

	testCases := []struct {
		name  string
		cfg   validator
		field string
	}{
		{name: "http port", cfg: &HTTPConfig{Port: 70000}, field: "server.port"},
		{name: "http read header timeout", cfg: noReadHeader, field: "server.timeout.readHeader"},
		{name: "log level", cfg: &LogConfig{Level: "trace"}, field: "log.level"},
		{name: "shutdown", cfg: &ShutdownConfig{Timeout: -time.Second}, field: "shutdown.timeout"},
		{name: "pprof address", cfg: &PProfConfig{Enabled: true, Addr: "6060"}, field: "pprof.addr"},
		{name: "telemetry endpoint", cfg: &TelemetryConfig{Enabled: true}, field: "telemetry.traces.otlphttp.endpoint"},
		{name: "metrics path", cfg: &MetricsConfig{Path: "metrics"}, field: "metrics.path"},
		{name: "grpc port", cfg: &GrpcServerConfig{Port: "grpc"}, field: "grpc.port"},
		{name: "database driver", cfg: &DatabaseConfig{Driver: "mysql"}, field: "database.driver"},
		{name: "database url", cfg: &DatabaseConfig{URL: "mysql://db", Timeout: time.Second}, field: "database.url"},
		{name: "database timeout", cfg: &DatabaseConfig{URL: "postgres://db"}, field: "database.timeout"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.cfg.Validate()

			// then
			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr), "expected a FieldError, got %v", err)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	logCfg := &LogConfig{Level: " WARN "}
	shutdown := &ShutdownConfig{}
	grpcCfg := &GrpcServerConfig{Port: "50051"}
	metricsCfg := &MetricsConfig{}
	db := &DatabaseConfig{URL: "postgresql://db/inventory", Timeout: time.Second}

	for _, v := range []validator{validHTTP(), logCfg, shutdown, grpcCfg, metricsCfg, db, &PProfConfig{}, &TelemetryConfig{}} {
		require.NoError(t, v.Validate())
	}

	assert.Equal(t, "warn", logCfg.Level)
	assert.Equal(t, defaultShutdownTimeout, shutdown.Timeout)
	assert.Equal(t, defaultHealthInterval, grpcCfg.HealthInterval)
	assert.Equal(t, defaultMetricsPath, metricsCfg.Path)
	assert.Equal(t, DriverPostgres, db.Driver)
}

func TestDatabaseConfig_MemorySkipsURL(t *testing.T) {
	assert.NoError(t, (&DatabaseConfig{Driver: DriverMemory}).Validate())
}

func TestHTTPConfig_Addr(t *testing.T) {
	c := validHTTP()
	assert.Equal(t, ":8080", c.Addr())
	c.Host = "127.0.0.1"
	assert.Equal(t, "127.0.0.1:8080", c.Addr())
}

func TestMaskURL(t *testing.T) {
	testCases := map[string]string{
		"":                                    "<not configured>",
		"postgres://db/inventory":             "****",
		"postgres://u:secret@db/inventory":    "****@db/inventory",
		"postgres://u:p@ss@db:5432/inventory": "****@db:5432/inventory",
	}
	for in, expected := range testCases {
		assert.Equal(t, expected, MaskURL(in))
	}
}

func TestString_SectionLayout(t *testing.T) {
	c := &ShutdownConfig{Timeout: 3 * time.Second}
	assert.Equal(t, "\n--- Shutdown ---\n  timeout: 3s\n", c.String())
}
