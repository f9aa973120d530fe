package metrics

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "eonics-site"

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal      metric.Int64Counter
	HTTPRequestDuration    metric.Float64Histogram
	FormSubmissionsTotal   metric.Int64Counter
	WizardTransitionsTotal metric.Int64Counter
	ActiveViewsGauge       metric.Int64Gauge
	TemplateRenderDuration metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments from the global MeterProvider. Only
// the first call has an effect, so it must run after the provider is set.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter(meterName)
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.FormSubmissionsTotal, err = meter.Int64Counter(
			"form_submissions_total",
			metric.WithDescription("Demo form submissions by form and outcome"),
			metric.WithUnit("{submission}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create form_submissions_total: %v", err)
		}

		m.WizardTransitionsTotal, err = meter.Int64Counter(
			"recovery_wizard_transitions_total",
			metric.WithDescription("Forgot-password wizard step transitions"),
			metric.WithUnit("{transition}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create recovery_wizard_transitions_total: %v", err)
		}

		m.ActiveViewsGauge, err = meter.Int64Gauge(
			"active_views_current",
			metric.WithDescription("Page views currently holding form state"),
			metric.WithUnit("{view}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create active_views_current: %v", err)
		}

		m.TemplateRenderDuration, err = meter.Float64Histogram(
			"template_render_duration_seconds",
			metric.WithDescription("Duration of template rendering in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create template_render_duration_seconds: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, creating them on first use. Without a
// configured provider they are no-ops, which keeps tests free of setup.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}

// RecordForm counts one submission of form with the given outcome.
func RecordForm(ctx context.Context, form, outcome string) {
	Get().FormSubmissionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("form", form),
		attribute.String("outcome", outcome),
	))
}

func RecordTransition(ctx context.Context, from, to string) {
	Get().WizardTransitionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}
