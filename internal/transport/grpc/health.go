// Package grpc exposes the standard gRPC health service for the inventory service.
package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthProber keeps the gRPC health status of the service in sync with store pings.
type HealthProber struct {
	health      *health.Server
	pinger      Pinger
	serviceName string
	interval    time.Duration
	timeout     time.Duration
	logger      *slog.Logger
}

// NewHealthProber creates a prober reporting under both the empty (server wide) name and serviceName.
func NewHealthProber(pinger Pinger, serviceName string, interval time.Duration, logger *slog.Logger) *HealthProber {
	timeout := interval / 2
	if timeout <= 0 || timeout > 2*time.Second {
		timeout = 2 * time.Second
	}
	return &HealthProber{
		health:      health.NewServer(),
		pinger:      pinger,
		serviceName: serviceName,
		interval:    interval,
		timeout:     timeout,
		logger:      logger.With("component", "grpc-health"),
	}
}

// Register attaches the health service to s.
func (p *HealthProber) Register(s *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(s, p.health)
}

// Server returns the underlying health server.
func (p *HealthProber) Server() grpc_health_v1.HealthServer {
	return p.health
}

// Check pings the store once and publishes the result.
func (p *HealthProber) Check(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := p.pinger.Ping(ctx); err != nil {
		p.logger.WarnContext(ctx, "Store ping failed", "error", err)
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	p.health.SetServingStatus("", status)
	p.health.SetServingStatus(p.serviceName, status)
	return status
}

// Run checks immediately and then every interval until ctx is done,
// after which all statuses are switched to NOT_SERVING.
func (p *HealthProber) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			p.health.Shutdown()
			return nil
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}
