// Package app wires the inventory service together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/service"
	"github.com/abgdnv/inventory/internal/store"
	grpcImpl "github.com/abgdnv/inventory/internal/transport/grpc"
	"github.com/abgdnv/inventory/internal/transport/rest"
	"github.com/abgdnv/inventory/pkg/bootstrap"
	pkgconfig "github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/metrics"
	"github.com/abgdnv/inventory/pkg/server"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
)

const ServiceName = "inventory"

type Dependencies struct {
	ProductService service.ProductService
	// Metrics is nil when metrics are disabled.
	Metrics     *metrics.HTTPMetrics
	MetricsPath string
	Logger      *slog.Logger
}

// NewStore opens the configured backend. For postgres it connects, ensures the schema
// and returns a cleanup func closing the pool.
func NewStore(ctx context.Context, cfg pkgconfig.DatabaseConfig, logger *slog.Logger) (store.ProductStore, func(), error) {
	if cfg.Driver == pkgconfig.DriverMemory {
		logger.Warn("Using in-memory store, data is lost on restart")
		return store.NewInMemoryStore(), func() {}, nil
	}

	dbPool, err := bootstrap.NewDbPool(ctx, cfg.URL, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Successfully connected to the database!")

	if err := store.EnsureSchema(cfg.URL); err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	logger.Info("Database schema is up to date")

	return store.NewPgStore(dbPool), dbPool.Close, nil
}

func SetupDependencies(productStore store.ProductStore, cfg pkgconfig.MetricsConfig, logger *slog.Logger) *Dependencies {
	deps := &Dependencies{
		ProductService: service.NewService(productStore),
		MetricsPath:    cfg.Path,
		Logger:         logger,
	}
	if cfg.Enabled {
		deps.Metrics = metrics.NewHTTPMetrics(ServiceName)
	}
	return deps
}

// SetupHttpHandler initializes the router with middleware and routes.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	var mux *chi.Mux
	if deps.Metrics != nil {
		mux = server.NewChiRouter(deps.Logger, deps.Metrics.Middleware)
		mux.Method(http.MethodGet, deps.MetricsPath, deps.Metrics.Handler())
	} else {
		mux = server.NewChiRouter(deps.Logger)
	}
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the inventory service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server. With tracing enabled the
// handler is wrapped by otelhttp so each request gets a server span.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	handler := SetupHttpHandler(deps)
	if cfg.Telemetry.Enabled {
		handler = otelhttp.NewHandler(handler, ServiceName)
	}

	return server.NewHTTPServer(cfg.HTTPServer, handler, deps.Logger)
}

// SetupGrpcServer creates the gRPC server exposing the health service.
func SetupGrpcServer(deps *Dependencies, cfg pkgconfig.GrpcServerConfig) (*grpc.Server, *grpcImpl.HealthProber) {
	prober := grpcImpl.NewHealthProber(deps.ProductService, ServiceName, cfg.HealthInterval, deps.Logger)
	return server.NewGRPCServer(cfg.ReflectionEnabled, prober.Register), prober
}
