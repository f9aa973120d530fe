package icon

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
)

// Icon renders a lucide placeholder that the client script swaps for an SVG.
func Icon(name, class string) templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		m.Open("i",
			markup.Attr("data-lucide", name),
			markup.AttrIf("class", class),
			markup.Attr("aria-hidden", "true"),
		)
		m.Close("i")
	})
}
