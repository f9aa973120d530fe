package contact

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/domain"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
	"github.com/FACorreiaa/eonics-site/internal/app/observability/metrics"
)

// MinMessageLength is the shortest trimmed message accepted.
const MinMessageLength = 10

var ErrMessageTooShort = &models.ValidationError{
	Notice: models.Info("Message too short", "Please write at least 10 characters so we understand your request."),
	Err:    errors.New("contact message too short"),
}

var NoticeQueued = models.Info("Message queued",
	"Backend isn't connected yet, this is a UI demo. We can wire it to email/DB when you're ready.")

type MessageForm struct {
	Message string `form:"message"`
}

// Submit checks a message. Accepted messages go nowhere.
func Submit(ctx context.Context, message string) error {
	if utf8.RuneCountInString(strings.TrimSpace(message)) < MinMessageLength {
		metrics.RecordForm(ctx, "contact", "rejected")
		return ErrMessageTooShort
	}
	metrics.RecordForm(ctx, "contact", "ok")
	return nil
}

type Handler struct {
	*domain.BaseHandler
	email string
}

func NewHandler(base *domain.BaseHandler, contactEmail string) *Handler {
	return &Handler{BaseHandler: base, email: contactEmail}
}

// Send handles POST /contact. A rejected message stays in the form; an
// accepted one clears it.
func (h *Handler) Send(c *gin.Context) {
	var form MessageForm
	if err := c.ShouldBind(&form); err != nil {
		h.Logger.Warn("Failed to bind contact form", zap.Error(err))
		c.String(http.StatusBadRequest, "Bad request")
		return
	}

	if err := Submit(c.Request.Context(), form.Message); err != nil {
		h.RenderOutcome(c, Form(FormProps{Email: h.email, Message: form.Message}), err)
		return
	}
	h.RenderOutcome(c, Form(FormProps{Email: h.email}), nil, NoticeQueued)
}
