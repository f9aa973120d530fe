package domain

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/components/toast"
	"github.com/FACorreiaa/eonics-site/internal/app/middleware"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
	"github.com/FACorreiaa/eonics-site/internal/app/observability/metrics"
	"github.com/FACorreiaa/eonics-site/internal/pkg/viewtoken"
)

// StatusStale answers form posts that target a step the view has already left.
const StatusStale = http.StatusConflict

var staleNotice = models.Notice{
	Title:       "Form out of date",
	Description: "This step is no longer active. The current step is shown instead.",
	Variant:     models.NoticeDestructive,
}

// LayoutFunc wraps page content in the full document.
type LayoutFunc func(models.LayoutTempl) templ.Component

type BaseHandler struct {
	Logger          *zap.Logger
	Issuer          *viewtoken.Issuer
	Layout          LayoutFunc
	BackToTopOffset int
}

func NewBaseHandler(logger *zap.Logger, issuer *viewtoken.Issuer, layout LayoutFunc, backToTopOffset int) *BaseHandler {
	return &BaseHandler{
		Logger:          logger,
		Issuer:          issuer,
		Layout:          layout,
		BackToTopOffset: backToTopOffset,
	}
}

// ViewID returns the id of the view the request belongs to.
func (h *BaseHandler) ViewID(c *gin.Context) string {
	return middleware.GetViewIDFromContext(c)
}

func (h *BaseHandler) newLayoutData(title, token string, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:           title,
		ViewToken:       token,
		Nav:             models.MainNav,
		BackToTopOffset: h.BackToTopOffset,
		Year:            time.Now().Year(),
		Content:         content,
	}
}

func (h *BaseHandler) render(c *gin.Context, status int, components ...templ.Component) {
	start := time.Now()
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)

	ctx := c.Request.Context()
	for _, component := range components {
		if component == nil {
			continue
		}
		if err := component.Render(ctx, c.Writer); err != nil {
			h.Logger.Error("Failed to render component",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			return
		}
	}
	recordRender(ctx, c.FullPath(), time.Since(start))
}

// RenderPage renders content alone for HTMX requests and inside the full
// layout otherwise. Every full render starts a new view with a fresh token,
// which is what makes a reload reset all form state.
func (h *BaseHandler) RenderPage(c *gin.Context, title string, content templ.Component) {
	if middleware.IsHTMX(c) {
		h.render(c, http.StatusOK, content)
		return
	}

	viewID, token, err := h.Issuer.Issue()
	if err != nil {
		h.Logger.Error("Failed to start view", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	h.Logger.Debug("View started", zap.String("view_id", viewID))
	metrics.Get().ActiveViewsGauge.Record(c.Request.Context(), int64(h.Issuer.ActiveViews()))

	h.render(c, http.StatusOK, h.Layout(h.newLayoutData(title, token, content)))
}

// RenderFragment writes content followed by out-of-band toasts.
func (h *BaseHandler) RenderFragment(c *gin.Context, status int, content templ.Component, notices ...models.Notice) {
	h.render(c, status, content, toast.OOB(notices...))
}

// RenderOutcome answers a form post. On success the content is rendered with
// the success notices; a validation failure keeps the status at 422 and shows
// its notice; a stale step answers 409 with the current state; anything else
// is logged and reported as a generic failure.
func (h *BaseHandler) RenderOutcome(c *gin.Context, content templ.Component, err error, success ...models.Notice) {
	switch {
	case err == nil:
		h.RenderFragment(c, http.StatusOK, content, success...)
	case errors.Is(err, models.ErrWrongStep):
		h.Logger.Debug("Stale form submission", zap.String("path", c.Request.URL.Path), zap.Error(err))
		h.RenderFragment(c, StatusStale, content, staleNotice)
	case errors.Is(err, models.ErrValidation):
		h.RenderFragment(c, http.StatusUnprocessableEntity, content, models.NoticeFromError(err))
	default:
		h.Logger.Error("Form submission failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		h.RenderFragment(c, http.StatusInternalServerError, content, models.NoticeFromError(err))
	}
}

func recordRender(ctx context.Context, route string, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	metrics.Get().TemplateRenderDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.String("route", route)))
}
