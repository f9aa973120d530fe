package home

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/content"
	"github.com/FACorreiaa/eonics-site/internal/app/domain"
	"github.com/FACorreiaa/eonics-site/internal/app/pages"
	"github.com/FACorreiaa/eonics-site/internal/pkg/viewtoken"
)

func newRouter() (*gin.Engine, *viewtoken.Issuer) {
	gin.SetMode(gin.TestMode)
	catalog := content.Default()
	issuer := viewtoken.NewIssuer([]byte("test-secret"), time.Hour, zap.NewNop())
	base := domain.NewBaseHandler(zap.NewNop(), issuer, pages.Layout(catalog), 500)
	h := NewHomeHandlers(base, catalog)

	r := gin.New()
	r.GET("/", h.ShowHomePage)
	r.GET("/healthz", h.Healthz)
	r.GET("/fragments/ring", h.Ring)
	return r, issuer
}

func get(t *testing.T, r *gin.Engine, path string, htmx bool) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func viewTokenOf(t *testing.T, doc *goquery.Document) string {
	t.Helper()
	raw, ok := doc.Find("body").Attr("hx-headers")
	require.True(t, ok, "body must carry hx-headers")
	start := strings.Index(raw, `"`+viewtoken.HeaderName+`":"`)
	require.GreaterOrEqual(t, start, 0)
	rest := raw[start+len(viewtoken.HeaderName)+4:]
	return rest[:strings.Index(rest, `"`)]
}

func TestShowHomePage_FullLayout(t *testing.T) {
	r, issuer := newRouter()
	w, doc := get(t, r, "/", false)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	for _, id := range []string{"home", "events", "projects", "competitions", "training", "contact"} {
		assert.Equal(t, 1, doc.Find("section#"+id).Length(), "section %s", id)
	}
	assert.Equal(t, 1, doc.Find("#account-dialog").Length())
	assert.Equal(t, 1, doc.Find("#toasts").Length())
	assert.Equal(t, "500", doc.Find("#back-to-top").AttrOr("data-offset", ""))
	assert.Contains(t, doc.Find("#account-trigger").Text(), "Login")

	_, err := issuer.Parse(viewTokenOf(t, doc))
	assert.NoError(t, err, "page must carry a valid view token")
}

func TestShowHomePage_ReloadMintsNewView(t *testing.T) {
	r, issuer := newRouter()
	_, first := get(t, r, "/", false)
	_, second := get(t, r, "/", false)

	a, err := issuer.Parse(viewTokenOf(t, first))
	require.NoError(t, err)
	b, err := issuer.Parse(viewTokenOf(t, second))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestShowHomePage_HTMXReturnsContentOnly(t *testing.T) {
	r, _ := newRouter()
	_, doc := get(t, r, "/", true)

	assert.Equal(t, 0, doc.Find("body[hx-headers]").Length())
	assert.Equal(t, 1, doc.Find("section#home").Length())
	assert.Equal(t, 0, doc.Find("footer").Length())
}

func TestRing(t *testing.T) {
	r, _ := newRouter()

	_, doc := get(t, r, "/fragments/ring?active=cloud", true)
	assert.Equal(t, "cloud", doc.Find("#icon-ring").AttrOr("data-active", ""))
	assert.Equal(t, "true", doc.Find(`.ring-icon[data-id="cloud"]`).AttrOr("aria-pressed", ""))

	_, doc = get(t, r, "/fragments/ring?active=nope", true)
	assert.Equal(t, "iot", doc.Find("#icon-ring").AttrOr("data-active", ""), "unknown ids fall back to the first item")
}

func TestHealthz(t *testing.T) {
	r, _ := newRouter()
	w, _ := get(t, r, "/healthz", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNotFound(t *testing.T) {
	r, _ := newRouter()
	h := NewHomeHandlers(nil, content.Default())
	r.NoRoute(h.NotFound)

	w, _ := get(t, r, "/nope", false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w, _ = get(t, r, "/nope", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
