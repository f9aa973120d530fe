package section

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
)

type Props struct {
	ID       string
	Title    string
	Subtitle string
}

// Section is the heading + content wrapper every content block uses.
func Section(p Props, content templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("section",
			markup.Attr("id", p.ID),
			markup.Attr("class", "relative scroll-mt-24 py-14 md:py-20"),
			markup.Attr("aria-label", p.Title),
		)
		m.Open("div", markup.Attr("class", "container"))
		m.Open("header", markup.Attr("class", "mb-8 md:mb-10"))
		m.Element("h2", p.Title, markup.Attr("class", "text-balance text-3xl font-semibold tracking-tight text-primary md:text-4xl"))
		if p.Subtitle != "" {
			m.Element("p", p.Subtitle, markup.Attr("class", "mt-2 max-w-2xl text-sm text-muted-foreground md:text-base"))
		}
		m.Close("header")
		m.Component(ctx, content)
		m.Close("div")
		m.Close("section")
	})
}
