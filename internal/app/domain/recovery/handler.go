package recovery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/domain"
)

type EmailForm struct {
	Email string `form:"email"`
}

type OTPForm struct {
	OTP string `form:"otp"`
}

type ResetForm struct {
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

type Handler struct {
	*domain.BaseHandler
	service *Service
}

func NewHandler(base *domain.BaseHandler, service *Service) *Handler {
	return &Handler{BaseHandler: base, service: service}
}

func (h *Handler) bind(c *gin.Context, form any) bool {
	if err := c.ShouldBind(form); err != nil {
		h.Logger.Warn("Failed to bind recovery form", zap.Error(err))
		c.String(http.StatusBadRequest, "Bad request")
		return false
	}
	return true
}

// SendCode handles POST /recovery/email.
func (h *Handler) SendCode(c *gin.Context) {
	var form EmailForm
	if !h.bind(c, &form) {
		return
	}
	f, err := h.service.SendCode(c.Request.Context(), h.ViewID(c), form.Email)
	h.RenderOutcome(c, View(f, h.service.Now()), err, NoticeSent)
}

// VerifyCode handles POST /recovery/otp.
func (h *Handler) VerifyCode(c *gin.Context) {
	var form OTPForm
	if !h.bind(c, &form) {
		return
	}
	f, err := h.service.VerifyCode(c.Request.Context(), h.ViewID(c), form.OTP)
	h.RenderOutcome(c, View(f, h.service.Now()), err, NoticeVerified)
}

// ResendCode handles POST /recovery/resend.
func (h *Handler) ResendCode(c *gin.Context) {
	f, err := h.service.ResendCode(c.Request.Context(), h.ViewID(c))
	h.RenderOutcome(c, View(f, h.service.Now()), err, NoticeSent, NoticeResent)
}

// ResetPassword handles POST /recovery/reset.
func (h *Handler) ResetPassword(c *gin.Context) {
	var form ResetForm
	if !h.bind(c, &form) {
		return
	}
	f, err := h.service.ResetPassword(c.Request.Context(), h.ViewID(c), form.NewPassword, form.ConfirmPassword)
	h.RenderOutcome(c, View(f, h.service.Now()), err, NoticeReset)
}

// StartOver handles POST /recovery/start-over.
func (h *Handler) StartOver(c *gin.Context) {
	f := h.service.StartOver(c.Request.Context(), h.ViewID(c))
	h.RenderFragment(c, http.StatusOK, View(f, h.service.Now()))
}

// Cooldown handles GET /recovery/cooldown, polled while the resend is locked.
func (h *Handler) Cooldown(c *gin.Context) {
	f := h.service.Current(h.ViewID(c))
	h.RenderFragment(c, http.StatusOK, Countdown(f, h.service.Now()))
}
