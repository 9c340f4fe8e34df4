package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/harborbank/scoring-service/internal/application/usecase"
	"github.com/harborbank/scoring-service/internal/domain/port"
	"github.com/harborbank/scoring-service/internal/domain/service"
	"github.com/harborbank/scoring-service/internal/infrastructure/config"
	kafkainfra "github.com/harborbank/scoring-service/internal/infrastructure/kafka"
	"github.com/harborbank/scoring-service/internal/infrastructure/messaging"
	"github.com/harborbank/scoring-service/internal/infrastructure/ml"
	grpcPresentation "github.com/harborbank/scoring-service/internal/presentation/grpc"
	"github.com/harborbank/scoring-service/internal/presentation/rest"
	pkgkafka "github.com/harborbank/scoring-service/pkg/kafka"
	"github.com/harborbank/scoring-service/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.Telemetry.ServiceName,
	})

	logger.Info("starting scoring-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort

	// Scoring model: the trained artifact when configured, the heuristic
	// otherwise. Capability problems surface here, not on the first request.
	client := buildModelClient(cfg, logger)

	// Event publisher: Kafka when brokers are configured, the log otherwise.
	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
		defer producer.Close()
		publisher = messaging.NewBestEffortPublisher(
			kafkainfra.NewPublisher(producer, cfg.Kafka.Topic, logger),
			logger,
		)
		logger.Info("kafka publisher enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		publisher = messaging.NewLoggingPublisher(logger)
		logger.Info("no kafka brokers configured, events go to the log")
	}

	// Wire the scoring pipeline and use cases.
	engine := service.NewDecisionEngine(service.NewFeatureBuilder(), client)
	scoreAppUC := usecase.NewScoreApplicationUseCase(engine, publisher, cfg.Model.Threshold)
	scoreVectorUC := usecase.NewScoreFeatureVectorUseCase(client, cfg.Model.Threshold)
	scoreBatchUC := usecase.NewScoreFeatureBatchUseCase(client, cfg.Model.Threshold)
	simulateUC := usecase.NewSimulateCreditUseCase()
	modelInfoUC := usecase.NewGetModelInfoUseCase(client, cfg.Model.Threshold)

	// gRPC server.
	grpcHandler := grpcPresentation.NewScoringHandler(scoreAppUC, scoreVectorUC, modelInfoUC, logger)
	grpcServer, err := grpcPresentation.NewServer(grpcHandler, logger, grpcPresentation.Options{
		CertFile:   cfg.GRPCTLS.CertFile,
		KeyFile:    cfg.GRPCTLS.KeyFile,
		Reflection: cfg.GRPCReflection,
	})
	if err != nil {
		logger.Error("failed to configure gRPC server", "error", err)
		os.Exit(1)
	}

	// HTTP server.
	mux := http.NewServeMux()
	rest.NewServer(scoreAppUC, scoreVectorUC, scoreBatchUC, simulateUC, modelInfoUC, logger).RegisterRoutes(mux)
	rest.NewHealthHandler(client, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	// Build middleware chain (applied in reverse order).
	var h http.Handler = mux
	h = rest.LoggingMiddleware(logger)(h)
	h = rest.MetricsMiddleware(otel.Meter(cfg.Telemetry.ServiceName))(h)
	if cfg.RateLimit > 0 {
		h = rest.RateLimitMiddleware(rest.NewRateLimiter(cfg.RateLimit))(h)
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("scoring-service stopped")
}

// buildModelClient loads the configured artifact or falls back to the
// heuristic scorer. A configured artifact that cannot serve is fatal.
func buildModelClient(cfg config.Config, logger *slog.Logger) port.ModelClient {
	if cfg.Model.Path == "" {
		logger.Warn("MODEL_PATH not set, falling back to heuristic scoring")
		return service.NewHeuristicModel()
	}

	artifact, err := ml.LoadArtifact(cfg.Model.Path)
	if err != nil {
		logger.Error("failed to load model artifact", "path", cfg.Model.Path, "error", err)
		os.Exit(1)
	}

	client, err := ml.NewModelClient(artifact)
	if err != nil {
		logger.Error("model artifact cannot serve predictions", "path", cfg.Model.Path, "error", err)
		os.Exit(1)
	}

	info := client.Info()
	if info.NumFeatures != service.FeatureVectorWidth {
		logger.Error("model width does not match the feature layout",
			"artifact_features", info.NumFeatures,
			"layout_features", service.FeatureVectorWidth,
		)
		os.Exit(1)
	}

	logger.Info("model artifact loaded",
		"model_type", info.ModelType,
		"n_features", info.NumFeatures,
		"uses_scaler", info.UsesScaler,
	)
	return client
}
