package home

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/eonics-site/internal/app/domain"
	"github.com/FACorreiaa/eonics-site/internal/app/middleware"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
	"github.com/FACorreiaa/eonics-site/internal/app/pages"
)

type HomeHandlers struct {
	*domain.BaseHandler
	catalog models.Catalog
}

func NewHomeHandlers(base *domain.BaseHandler, catalog models.Catalog) *HomeHandlers {
	return &HomeHandlers{BaseHandler: base, catalog: catalog}
}

func (h *HomeHandlers) ShowHomePage(c *gin.Context) {
	h.RenderPage(c, h.catalog.ClubName+" - "+h.catalog.Tagline, pages.Landing(h.catalog, c.Query("active")))
}

// Ring handles GET /fragments/ring: the ring re-rendered around ?active=.
func (h *HomeHandlers) Ring(c *gin.Context) {
	h.RenderFragment(c, http.StatusOK, pages.IconRing(pages.RingProps{
		Items:    h.catalog.Ring,
		ActiveID: c.Query("active"),
		PerRing:  pages.DefaultIconsPerRing,
		Logo:     h.catalog.Logo,
		LogoAlt:  h.catalog.ClubName + " club logo",
	}))
}

func (h *HomeHandlers) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound sends unknown page requests back to the landing page. The site is a
// single page, so only GETs are redirected.
func (h *HomeHandlers) NotFound(c *gin.Context) {
	if c.Request.Method == http.MethodGet && !middleware.IsHTMX(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.String(http.StatusNotFound, "Not found")
}
