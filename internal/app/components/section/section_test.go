package section

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection(t *testing.T) {
	content := templ.Raw(`<p class="body">hello</p>`)

	t.Run("renders id, heading and content", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, Section(Props{ID: "events", Title: "Events & News", Subtitle: "Updates"}, content).Render(context.Background(), &sb))

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
		require.NoError(t, err)

		s := doc.Find("section#events")
		require.Equal(t, 1, s.Length())
		assert.Equal(t, "Events & News", s.Find("h2").Text())
		assert.Equal(t, "Updates", s.Find("header p").Text())
		assert.Equal(t, "hello", s.Find("p.body").Text())
	})

	t.Run("omits an empty subtitle", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, Section(Props{ID: "projects", Title: "Projects"}, content).Render(context.Background(), &sb))

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Find("header p").Length())
	})
}
