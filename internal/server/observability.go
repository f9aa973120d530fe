package server

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/observability/metrics"
	"github.com/FACorreiaa/eonics-site/internal/app/observability/tracer"
	"github.com/FACorreiaa/eonics-site/internal/pkg/config"
)

// InitObservability installs the OTel providers and registers the app
// instruments. The returned metrics server is not started.
func InitObservability(cfg *config.Config, logger *zap.Logger) (*tracer.Providers, error) {
	providers, err := tracer.InitOtelProviders(
		cfg.Observability.ServiceName,
		cfg.Observability.OTLPEndpoint,
		cfg.Server.MetricsAddr,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics.InitAppMetrics()
	logger.Info("Observability initialized", zap.String("metrics_endpoint", cfg.Server.MetricsAddr+"/metrics"))

	return providers, nil
}
