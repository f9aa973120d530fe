package recovery

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/domain"
	"github.com/FACorreiaa/eonics-site/internal/app/middleware"
	"github.com/FACorreiaa/eonics-site/internal/pkg/cache"
	"github.com/FACorreiaa/eonics-site/internal/pkg/viewtoken"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	router  *gin.Engine
	issuer  *viewtoken.Issuer
	clock   *fakeClock
	service *Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := &fakeClock{now: t0}
	issuer := viewtoken.NewIssuer([]byte("test-secret"), time.Hour, zap.NewNop())
	flows := cache.NewUnifiedCache[Flow](time.Hour, "recovery-test", zap.NewNop())
	service := NewService(flows, DefaultResendCooldown, zap.NewNop(), WithClock(clock.Now))
	base := domain.NewBaseHandler(zap.NewNop(), issuer, nil, 500)
	h := NewHandler(base, service)

	r := gin.New()
	g := r.Group("/recovery", middleware.ViewStateMiddleware(issuer, zap.NewNop()))
	g.POST("/email", h.SendCode)
	g.POST("/otp", h.VerifyCode)
	g.POST("/resend", h.ResendCode)
	g.POST("/reset", h.ResetPassword)
	g.POST("/start-over", h.StartOver)
	g.GET("/cooldown", h.Cooldown)

	return &harness{router: r, issuer: issuer, clock: clock, service: service}
}

func (h *harness) newView(t *testing.T) (string, string) {
	t.Helper()
	viewID, token, err := h.issuer.Issue()
	require.NoError(t, err)
	return viewID, token
}

func (h *harness) do(t *testing.T, method, path, token string, form url.Values) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("HX-Request", "true")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set(viewtoken.HeaderName, token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func toastTitles(doc *goquery.Document) []string {
	var titles []string
	doc.Find(`[hx-swap-oob="beforeend:#toasts"] .toast-title`).Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	return titles
}

func TestHandler_FullWizard(t *testing.T) {
	h := newHarness(t)
	_, token := h.newView(t)

	w, doc := h.do(t, http.MethodPost, "/recovery/email", token, url.Values{"email": {" student@college.edu "}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "otp", doc.Find("#recovery-flow").AttrOr("data-step", ""))
	assert.Equal(t, []string{"OTP sent"}, toastTitles(doc))
	assert.Equal(t, "00:30", doc.Find("#resend-countdown .countdown").Text())
	assert.Equal(t, "/recovery/cooldown", doc.Find("#resend-countdown").AttrOr("hx-get", ""))
	_, disabled := doc.Find("#resend-countdown button").Attr("disabled")
	assert.True(t, disabled)

	w, doc = h.do(t, http.MethodPost, "/recovery/otp", token, url.Values{"otp": {"123 456"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reset", doc.Find("#recovery-flow").AttrOr("data-step", ""))
	assert.Equal(t, []string{"OTP verified"}, toastTitles(doc))

	w, doc = h.do(t, http.MethodPost, "/recovery/reset", token, url.Values{
		"new_password":     {"password1"},
		"confirm_password": {"password1"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "done", doc.Find("#recovery-flow").AttrOr("data-step", ""))
	assert.Contains(t, doc.Find("#recovery-flow").Text(), "Your password has been successfully reset.")
	assert.Equal(t, []string{"Password reset"}, toastTitles(doc))

	w, doc = h.do(t, http.MethodPost, "/recovery/start-over", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "email", doc.Find("#recovery-flow").AttrOr("data-step", ""))
	assert.Equal(t, "", doc.Find("#forgot-email").AttrOr("value", "missing"))
}

func TestHandler_ValidationKeepsStep(t *testing.T) {
	h := newHarness(t)
	_, token := h.newView(t)

	w, doc := h.do(t, http.MethodPost, "/recovery/email", token, url.Values{"email": {"not-an-email"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "email", doc.Find("#recovery-flow").AttrOr("data-step", ""))
	assert.Equal(t, []string{"Invalid email"}, toastTitles(doc))
	assert.Equal(t, "destructive", doc.Find(".toast").AttrOr("data-variant", ""))
	assert.Equal(t, "2000", doc.Find(".toast").AttrOr("data-auto-dismiss", ""))

	w, doc = h.do(t, http.MethodPost, "/recovery/email", token, url.Values{"email": {""}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"Email required"}, toastTitles(doc))
}

func TestHandler_ResendCooldown(t *testing.T) {
	h := newHarness(t)
	viewID, token := h.newView(t)

	_, _ = h.do(t, http.MethodPost, "/recovery/email", token, url.Values{"email": {"student@college.edu"}})
	deadline := h.service.Current(viewID).ResendDeadline()

	h.clock.Advance(5 * time.Second)
	w, doc := h.do(t, http.MethodPost, "/recovery/resend", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"Please wait"}, toastTitles(doc))
	assert.Equal(t, deadline, h.service.Current(viewID).ResendDeadline())

	w, doc = h.do(t, http.MethodGet, "/recovery/cooldown", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "00:25", doc.Find("#resend-countdown .countdown").Text())

	h.clock.Advance(25 * time.Second)
	_, doc = h.do(t, http.MethodGet, "/recovery/cooldown", token, nil)
	countdown := doc.Find("#resend-countdown")
	_, polling := countdown.Attr("hx-trigger")
	assert.False(t, polling, "polling must stop once the cooldown is over")
	_, disabled := countdown.Find("button").Attr("disabled")
	assert.False(t, disabled)

	w, doc = h.do(t, http.MethodPost, "/recovery/resend", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"OTP sent", "Resent OTP"}, toastTitles(doc))
	assert.Equal(t, "00:30", doc.Find("#resend-countdown .countdown").Text())
}

func TestHandler_StaleStep(t *testing.T) {
	h := newHarness(t)
	viewID, token := h.newView(t)

	w, doc := h.do(t, http.MethodPost, "/recovery/reset", token, url.Values{
		"new_password":     {"password1"},
		"confirm_password": {"password1"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email", doc.Find("#recovery-flow").AttrOr("data-step", ""))
	assert.Equal(t, []string{"Form out of date"}, toastTitles(doc))
	assert.Equal(t, StepEmail, h.service.Current(viewID).Step())
}

func TestHandler_ViewsAreIsolated(t *testing.T) {
	h := newHarness(t)
	first, firstToken := h.newView(t)
	second, _ := h.newView(t)

	_, _ = h.do(t, http.MethodPost, "/recovery/email", firstToken, url.Values{"email": {"student@college.edu"}})

	assert.Equal(t, StepOTP, h.service.Current(first).Step())
	assert.Equal(t, StepEmail, h.service.Current(second).Step(), "a new view starts from a fresh wizard")
}

func TestHandler_MissingTokenRefreshes(t *testing.T) {
	h := newHarness(t)

	w, _ := h.do(t, http.MethodPost, "/recovery/email", "", url.Values{"email": {"student@college.edu"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "true", w.Header().Get("HX-Refresh"))
}
