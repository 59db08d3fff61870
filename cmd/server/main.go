package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/light-bringer/smartcup-service/api/catalog/v1"
	"github.com/light-bringer/smartcup-service/internal/config"
	"github.com/light-bringer/smartcup-service/internal/metrics"
	"github.com/light-bringer/smartcup-service/internal/services"
	"github.com/light-bringer/smartcup-service/internal/telemetry"
	grpccatalog "github.com/light-bringer/smartcup-service/internal/transport/grpc/catalog"
	httphandler "github.com/light-bringer/smartcup-service/internal/transport/http"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := telemetry.NewLogger(telemetry.ParseLevel(cfg.Telemetry.LogLevel))
	slog.SetDefault(logger)

	tp, err := telemetry.InitTracing(cfg.Service.Name, cfg.Service.Version)
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("tracer shutdown failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("starting catalog service",
		slog.String("version", cfg.Service.Version),
		slog.String("source", cfg.Catalog.Source),
		slog.Int("page_size", cfg.Catalog.PageSize),
		slog.String("default_sort", cfg.Catalog.DefaultSort.String()),
		slog.Int("grpc_port", cfg.Server.GRPCPort),
		slog.Int("http_port", cfg.Server.HTTPPort),
	)

	// 2. Initialize service dependencies (DI container)
	registry := metrics.NewRegistry()
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger, registry)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create gRPC server and register services
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpccatalog.UnaryServerInterceptor(registry, telemetry.WithComponent(logger, "grpc"))),
	)
	pb.RegisterCatalogServiceServer(grpcServer, serviceOpts.CatalogHandler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Enable reflection (for grpcurl and debugging)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("gRPC server listening", slog.Int("port", cfg.Server.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	// 4. Create HTTP server calling the gRPC handler in-process
	httpServer := &http.Server{
		Addr: ":" + strconv.Itoa(cfg.Server.HTTPPort),
		Handler: httphandler.NewRouter(
			httphandler.NewCatalogHandler(serviceOpts.CatalogHandler),
			registry,
			telemetry.WithComponent(logger, "http"),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", slog.Int("port", cfg.Server.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	// 5. Evict expired sessions in the background
	go sweepSessions(ctx, serviceOpts, registry, logger)

	// 6. Graceful shutdown handling
	serveErr := waitForShutdown(ctx, errCh, logger)

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	grpcServer.GracefulStop()

	return serveErr
}

// waitForShutdown blocks until ctx is cancelled or a server fails. It returns
// nil for a requested stop and the server error otherwise.
func waitForShutdown(ctx context.Context, errCh <-chan error, logger *slog.Logger) error {
	select {
	case <-ctx.Done():
		logger.Info("shutting down gracefully")
		return nil
	case err := <-errCh:
		logger.Error("server failed, shutting down", slog.String("error", err.Error()))
		return err
	}
}

func sweepSessions(ctx context.Context, opts *services.ServiceOptions, registry *metrics.Registry, logger *slog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := opts.Sessions.Sweep(); removed > 0 {
				logger.Debug("expired sessions evicted", slog.Int("count", removed))
			}
			registry.SessionsActive.Set(float64(opts.Sessions.Len()))
		}
	}
}
