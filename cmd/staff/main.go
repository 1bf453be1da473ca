package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/joao-fontenele/abai-springs-mock/internal/staff"
	"github.com/joao-fontenele/abai-springs-mock/internal/messaging"
	"github.com/joao-fontenele/abai-springs-mock/internal/router"
	"github.com/joao-fontenele/abai-springs-mock/internal/static"
	"github.com/joao-fontenele/abai-springs-mock/internal/telemetry"
)

const (
	serviceName    = "staff"
	serviceVersion = "0.1.0"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, serviceName, serviceVersion)
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(ctx) }()

	shutdownMetrics, err := telemetry.ServeMetrics(os.Getenv("METRICS_PORT"), serviceName, serviceVersion, logger)
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMetrics(ctx) }()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3004"
	}

	docRoot := os.Getenv("DOC_ROOT")
	if docRoot == "" {
		docRoot = "."
	}

	root, err := static.NewRoot(docRoot, logger)
	if err != nil {
		logger.Error("invalid document root", "error", err)
		os.Exit(1)
	}

	var publisher staff.Publisher
	if kafkaBrokers := os.Getenv("KAFKA_BROKERS"); kafkaBrokers != "" {
		producer := messaging.NewProducer(strings.Split(kafkaBrokers, ","))
		defer func() { _ = producer.Close() }()
		publisher = producer
	}

	rt, err := router.New()
	if err != nil {
		logger.Error("failed to create router", "error", err)
		os.Exit(1)
	}
	staff.NewHandler(publisher, logger).Register(rt, root)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      otelhttp.NewHandler(telemetry.LogRequests(rt, logger), serviceName),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		base := "http://localhost:" + port
		logger.Info("starting staff portal server",
			"port", port,
			"doc_root", root.Dir(),
			"staff_login", base+staff.StaffLoginPath,
			"owner_dashboard", base+staff.OwnerDashboardPath,
			"health_check", base+staff.HealthPath,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
