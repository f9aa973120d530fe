package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/observability/metrics"
	"github.com/FACorreiaa/eonics-site/internal/pkg/viewtoken"
)

// Define typed context keys
type contextKey string

const ViewIDKey contextKey = "viewID"

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, HX-Request, HX-Target, HX-Current-URL, HX-Trigger, "+viewtoken.HeaderName)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// HTMX, lucide and the Tailwind browser build come from unpkg.
		csp := "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline' https://unpkg.com; " +
			"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
			"font-src 'self' https://fonts.gstatic.com; " +
			"img-src 'self' data: https:; " +
			"connect-src 'self'"
		c.Writer.Header().Set("Content-Security-Policy", csp)

		c.Next()
	}
}

// OTELGinMiddleware traces every request under serviceName.
func OTELGinMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// MetricsMiddleware records request counts and latencies per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m := metrics.Get()
		ctx := c.Request.Context()
		m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("route", route),
			attribute.String("status", strconv.Itoa(c.Writer.Status())),
		))
		m.HTTPRequestDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("route", route),
		))
	}
}

// ViewStateMiddleware resolves the X-View-Token header into a view id and keeps
// the view alive. Requests without a valid token, or whose view went idle, are
// told to reload the page, which mints a new view.
func ViewStateMiddleware(issuer *viewtoken.Issuer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewID, err := issuer.Resume(c.GetHeader(viewtoken.HeaderName))
		if err != nil {
			logger.Debug("Rejected view token",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.Header("HX-Refresh", "true")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		metrics.Get().ActiveViewsGauge.Record(c.Request.Context(), int64(issuer.ActiveViews()))
		c.Set(string(ViewIDKey), viewID)
		c.Next()
	}
}

// GetViewIDFromContext returns the view id set by ViewStateMiddleware.
func GetViewIDFromContext(c *gin.Context) string {
	if v, exists := c.Get(string(ViewIDKey)); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
