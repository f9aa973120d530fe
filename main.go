package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/content"
	"github.com/FACorreiaa/eonics-site/internal/pkg/config"
	"github.com/FACorreiaa/eonics-site/internal/server"
	"github.com/FACorreiaa/eonics-site/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.Observability.LogLevel),
		zap.String("service", cfg.Observability.ServiceName),
		zap.Int("pid", os.Getpid()),
	); err != nil {
		return err
	}
	defer func() { _ = logger.Log.Sync() }()

	catalog := content.Default()
	if err := content.Validate(catalog); err != nil {
		logger.Log.Error("Invalid site content", zap.Error(err))
		return err
	}

	providers, err := server.InitObservability(cfg, logger.Log)
	if err != nil {
		return err
	}
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	router, err := server.SetupRouter(cfg, catalog, logger.Log)
	if err != nil {
		logger.Log.Error("Failed to setup router", zap.Error(err))
		return err
	}

	srv := server.New(cfg, logger.Log)
	srv.SetRouter(router)

	servers := []*http.Server{srv.HTTPServer(), providers.MetricsServer}
	if cfg.Server.PprofEnabled {
		servers = append(servers, server.PprofServer(cfg.Server.PprofAddr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Serve(ctx, logger.Log, servers...); err != nil {
		return err
	}

	logger.Log.Info("Graceful shutdown complete")
	return nil
}
