package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/pkg/viewtoken"
)

func newViewRouter(issuer *viewtoken.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ViewStateMiddleware(issuer, zap.NewNop()))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetViewIDFromContext(c))
	})
	return r
}

func TestViewStateMiddleware(t *testing.T) {
	issuer := viewtoken.NewIssuer([]byte("secret"), time.Minute, nil)
	r := newViewRouter(issuer)

	t.Run("valid token exposes the view id", func(t *testing.T) {
		viewID, token, err := issuer.Issue()
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(viewtoken.HeaderName, token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, viewID, w.Body.String())
	})

	t.Run("missing token asks the page to reload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "true", w.Header().Get("HX-Refresh"))
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		_, token, err := issuer.Issue()
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(viewtoken.HeaderName, token+"x")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func requestWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(viewtoken.HeaderName, token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestViewStateMiddleware_ActiveViewOutlivesTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	issuer := viewtoken.NewIssuer([]byte("secret"), 30*time.Minute, nil,
		viewtoken.WithClock(func() time.Time { return now }))
	r := newViewRouter(issuer)

	viewID, token, err := issuer.Issue()
	require.NoError(t, err)

	start := now
	for _, step := range []time.Duration{10 * time.Minute, 10 * time.Minute, 9 * time.Minute, 2 * time.Minute} {
		now = now.Add(step)
		w := requestWithToken(r, token)
		require.Equal(t, http.StatusOK, w.Code, "request at t+%s", now.Sub(start))
		assert.Equal(t, viewID, w.Body.String())
		assert.Empty(t, w.Header().Get("HX-Refresh"))
	}
}

func TestViewStateMiddleware_IdleViewAsksForReload(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	issuer := viewtoken.NewIssuer([]byte("secret"), 30*time.Minute, nil,
		viewtoken.WithClock(func() time.Time { return now }))
	r := newViewRouter(issuer)

	_, token, err := issuer.Issue()
	require.NoError(t, err)

	now = now.Add(31 * time.Minute)
	w := requestWithToken(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "true", w.Header().Get("HX-Refresh"))
}

func TestSecurityMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "https://unpkg.com")
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/contact", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), viewtoken.HeaderName)
}
