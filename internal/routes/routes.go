package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/domain"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/account"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/contact"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/home"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/recovery"
	"github.com/FACorreiaa/eonics-site/internal/app/middleware"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
	"github.com/FACorreiaa/eonics-site/internal/app/pages"
	"github.com/FACorreiaa/eonics-site/internal/pkg/cache"
	"github.com/FACorreiaa/eonics-site/internal/pkg/config"
	"github.com/FACorreiaa/eonics-site/internal/pkg/viewtoken"
)

type AppHandlers struct {
	Home     *home.HomeHandlers
	Account  *account.Handler
	Recovery *recovery.Handler
	Contact  *contact.Handler
	Issuer   *viewtoken.Issuer
}

func Setup(r *gin.Engine, cfg *config.Config, catalog models.Catalog, log *zap.Logger) {
	handlers := setupDependencies(cfg, catalog, log)
	setupRouter(r, handlers, log)
}

func setupDependencies(cfg *config.Config, catalog models.Catalog, log *zap.Logger) *AppHandlers {
	// Per-view state expires once its view has been idle for VIEW_TTL; every
	// accepted request refreshes these entries through the issuer.
	sessions := cache.NewUnifiedCache[models.Session](cfg.View.TTL, "sessions", log)
	flows := cache.NewUnifiedCache[recovery.Flow](cfg.View.TTL, "recovery_flows", log)

	issuer := viewtoken.NewIssuer(cfg.View.TokenSecret, cfg.View.TTL, log, viewtoken.WithStores(sessions, flows))
	baseHandler := domain.NewBaseHandler(log, issuer, pages.Layout(catalog), cfg.Site.BackToTopOffset)

	recoveryService := recovery.NewService(flows, cfg.Site.ResendCooldown, log)
	accountService := account.NewService(sessions, log)

	return &AppHandlers{
		Home:     home.NewHomeHandlers(baseHandler, catalog),
		Account:  account.NewHandler(baseHandler, accountService, recoveryService),
		Recovery: recovery.NewHandler(baseHandler, recoveryService),
		Contact:  contact.NewHandler(baseHandler, catalog.ContactEmail),
		Issuer:   issuer,
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	r.GET("/healthz", h.Home.Healthz)

	public := r.Group("/")
	{
		public.GET("/", h.Home.ShowHomePage)
		public.GET("/fragments/ring", h.Home.Ring)
	}

	// Everything below mutates or reads per-view state.
	view := r.Group("/", middleware.ViewStateMiddleware(h.Issuer, log))
	{
		view.GET("/fragments/account", h.Account.ShowTab)
		view.POST("/account/login", h.Account.Login)
		view.POST("/account/signup", h.Account.Signup)
		view.POST("/contact", h.Contact.Send)
	}

	recoveryGroup := view.Group("/recovery")
	{
		recoveryGroup.POST("/email", h.Recovery.SendCode)
		recoveryGroup.POST("/otp", h.Recovery.VerifyCode)
		recoveryGroup.POST("/resend", h.Recovery.ResendCode)
		recoveryGroup.POST("/reset", h.Recovery.ResetPassword)
		recoveryGroup.POST("/start-over", h.Recovery.StartOver)
		recoveryGroup.GET("/cooldown", h.Recovery.Cooldown)
		recoveryGroup.POST("/back", h.Account.BackToLogin)
	}

	r.NoRoute(func(c *gin.Context) {
		log.Debug("Route not found", zap.String("path", c.Request.URL.Path))
		h.Home.NotFound(c)
	})
}
