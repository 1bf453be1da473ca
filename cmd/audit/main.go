package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/joao-fontenele/abai-springs-mock/internal/audit"
	"github.com/joao-fontenele/abai-springs-mock/internal/messaging"
	"github.com/joao-fontenele/abai-springs-mock/internal/telemetry"
)

const (
	serviceName    = "audit"
	serviceVersion = "0.1.0"
	groupID        = "mock-audit"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		logger.Error("KAFKA_BROKERS environment variable is required")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, serviceName, serviceVersion)
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	shutdownMetrics, err := telemetry.ServeMetrics(os.Getenv("METRICS_PORT"), serviceName, serviceVersion, logger)
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMetrics(context.Background()) }()

	brokers := strings.Split(kafkaBrokers, ",")
	handler := audit.NewHandler(logger)

	g, gctx := errgroup.WithContext(ctx)
	for _, topic := range []string{messaging.TopicMonitoring, messaging.TopicLoginAttempts} {
		consumer := messaging.NewConsumer(brokers, topic, groupID)
		defer func() { _ = consumer.Close() }()

		g.Go(func() error {
			return consumer.Consume(gctx, handler.Handle)
		})
	}

	logger.Info("starting audit worker", "brokers", brokers)

	if err := g.Wait(); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			logger.Info("consumers stopped")
			return
		}
		logger.Error("consumer error", "error", err)
		os.Exit(1)
	}
}
