package contact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/domain"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
	"github.com/FACorreiaa/eonics-site/internal/pkg/viewtoken"
)

func TestSubmit(t *testing.T) {
	tests := []struct {
		name    string
		message string
		ok      bool
	}{
		{name: "empty", message: ""},
		{name: "nine characters", message: "123456789"},
		{name: "padding does not count", message: "   short    "},
		{name: "exactly ten", message: "1234567890", ok: true},
		{name: "multibyte counts characters", message: "ééééééééé"},
		{name: "long", message: "When is the next robotics workshop?", ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Submit(context.Background(), tt.message)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Equal(t, "Message too short", models.NoticeFromError(err).Title)
		})
	}
}

func postContact(t *testing.T, message string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	issuer := viewtoken.NewIssuer([]byte("test-secret"), time.Hour, zap.NewNop())
	h := NewHandler(domain.NewBaseHandler(zap.NewNop(), issuer, nil, 500), "eonics@college.edu")

	r := gin.New()
	r.POST("/contact", h.Send)

	form := url.Values{"message": {message}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func TestHandler_Send(t *testing.T) {
	t.Run("short message is kept with a notice", func(t *testing.T) {
		w, doc := postContact(t, "hi <b>")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "hi <b>", doc.Find("#contact-form textarea").Text())
		assert.Equal(t, "Message too short", doc.Find(".toast-title").Text())
		assert.Equal(t, "default", doc.Find(".toast").AttrOr("data-variant", ""))
	})

	t.Run("accepted message clears the form", func(t *testing.T) {
		w, doc := postContact(t, "Please add me to the IoT workshop list.")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, doc.Find("#contact-form textarea").Text())
		assert.Equal(t, "Message queued", doc.Find(".toast-title").Text())
		assert.Contains(t, doc.Find("#contact-form").Text(), "eonics@college.edu")
	})
}
