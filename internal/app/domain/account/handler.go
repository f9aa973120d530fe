package account

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/domain"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/recovery"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

// closeDialogTrigger tells the client script to close the account dialog.
const closeDialogTrigger = `{"closeDialog":"` + DialogID + `"}`

type Handler struct {
	*domain.BaseHandler
	service  *Service
	recovery *recovery.Service
}

func NewHandler(base *domain.BaseHandler, service *Service, recoveryService *recovery.Service) *Handler {
	return &Handler{BaseHandler: base, service: service, recovery: recoveryService}
}

func (h *Handler) props(c *gin.Context, tab Tab) BodyProps {
	viewID := h.ViewID(c)
	return BodyProps{
		Tab:     tab,
		Session: h.service.Current(viewID),
		Flow:    h.recovery.Current(viewID),
		Now:     h.recovery.Now(),
	}
}

// ShowTab handles GET /fragments/account.
func (h *Handler) ShowTab(c *gin.Context) {
	tab := ParseTab(c.Query("tab"))
	h.RenderFragment(c, http.StatusOK, Body(h.props(c, tab)))
}

// Login handles POST /account/login.
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.Logger.Warn("Failed to bind login form", zap.Error(err))
		c.String(http.StatusBadRequest, "Bad request")
		return
	}

	session, err := h.service.Login(c.Request.Context(), h.ViewID(c), form)
	p := h.props(c, TabLogin)
	if err != nil {
		p.Email = form.Email
		h.RenderOutcome(c, Body(p), err)
		return
	}
	h.signedIn(c, p, models.Info("Logged in", "Welcome back, "+session.DisplayName+". Demo only (no backend)."))
}

// Signup handles POST /account/signup.
func (h *Handler) Signup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		h.Logger.Warn("Failed to bind signup form", zap.Error(err))
		c.String(http.StatusBadRequest, "Bad request")
		return
	}

	session, err := h.service.Signup(c.Request.Context(), h.ViewID(c), form)
	p := h.props(c, TabSignup)
	if err != nil {
		p.Name, p.Email = form.Name, form.Email
		h.RenderOutcome(c, Body(p), err)
		return
	}
	h.signedIn(c, p, models.Info("Account created", "Signed in as "+session.DisplayName+". Demo only (no backend)."))
}

func (h *Handler) signedIn(c *gin.Context, p BodyProps, notice models.Notice) {
	c.Header("HX-Trigger", closeDialogTrigger)
	h.RenderOutcome(c, templ.Join(Body(p), TriggersOOB(p.Session)), nil, notice)
}

// BackToLogin handles POST /recovery/back: the wizard resets and the dialog
// returns to the login tab.
func (h *Handler) BackToLogin(c *gin.Context) {
	tab := TabForgot
	h.recovery.BackToLogin(c.Request.Context(), h.ViewID(c), func() { tab = TabLogin })
	h.RenderFragment(c, http.StatusOK, Body(h.props(c, tab)))
}
