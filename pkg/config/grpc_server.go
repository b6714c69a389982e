package config

import (
	"strconv"
	"time"
)

const defaultHealthInterval = 10 * time.Second

type GrpcServerConfig struct {
	Port              string        `koanf:"port"`
	ReflectionEnabled bool          `koanf:"reflection"`
	HealthInterval    time.Duration `koanf:"healthInterval"`
}

func (c *GrpcServerConfig) String() string {
	return newSection("gRPC").
		add("port", c.Port).
		add("reflection", c.ReflectionEnabled).
		add("healthInterval", c.HealthInterval).
		String()
}

func (c *GrpcServerConfig) Validate() error {
	if c.Port == "" {
		return invalid("grpc.port", "not configured")
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port < 0 || port > 65535 {
		return invalid("grpc.port", "must be a port number, got %q", c.Port)
	}
	if c.HealthInterval <= 0 {
		c.HealthInterval = defaultHealthInterval
	}
	return nil
}
