package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/button"
	"github.com/FACorreiaa/eonics-site/internal/app/components/icon"
	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

// Hero is the #home block: intro copy, highlights and the icon ring.
func Hero(c models.Catalog, ring RingProps) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("section",
			markup.Attr("id", "home"),
			markup.Attr("class", "hero relative overflow-hidden pt-24 md:pt-28"),
			markup.Attr("aria-label", c.ClubName+" hero"),
			markup.Flag("data-pointer-glow", true),
		)
		m.Open("div", markup.Attr("class", "pointer-events-none absolute inset-0 bg-hero"))
		m.Close("div")
		m.Open("div", markup.Attr("class", "container relative"))
		m.Open("div", markup.Attr("class", "grid gap-10 md:grid-cols-12 md:items-center"))

		m.Open("div", markup.Attr("class", "min-w-0 md:col-span-7"))
		m.Open("p", markup.Attr("class", "inline-flex items-center gap-2 rounded-full border border-border/60 bg-card/40 px-3 py-1 text-xs text-muted-foreground backdrop-blur-xl"))
		m.Open("span", markup.Attr("class", "h-1.5 w-1.5 rounded-full bg-primary"))
		m.Close("span")
		m.Text("College Technical Club • IoT • Hardware • Integration")
		m.Close("p")
		m.Element("h1", c.ClubName, markup.Attr("class", "mt-5 text-balance text-5xl font-semibold tracking-tight text-primary md:text-6xl"))
		m.Element("p", c.Tagline, markup.Attr("class", "mt-3 text-lg text-muted-foreground md:text-xl"))
		m.Element("p", c.About, markup.Attr("class", "mt-6 max-w-2xl text-pretty text-base leading-relaxed text-foreground/90"))

		m.Open("div", markup.Attr("class", "mt-8 flex flex-wrap items-center gap-3"))
		m.Component(ctx, button.Button(button.Props{Href: "#projects", Attributes: templ.Attributes{"data-scroll": true}},
			button.Label("Explore Projects"), icon.Icon("arrow-up-right", "")))
		m.Component(ctx, button.Button(button.Props{Href: "#events", Variant: button.VariantGoldOutline, Attributes: templ.Attributes{"data-scroll": true}},
			button.Label("Latest Events"), icon.Icon("calendar", "")))
		m.Close("div")

		m.Open("div", markup.Attr("class", "mt-10 grid min-w-0 max-w-3xl grid-cols-1 gap-3 sm:grid-cols-2"))
		for _, h := range c.Highlights {
			m.Open("div", markup.Attr("class", "glass-panel min-w-0 overflow-hidden rounded-lg p-3 text-left sm:p-4"))
			m.Open("div", markup.Attr("class", "flex min-w-0 items-center gap-2 text-sm sm:text-base"))
			m.Component(ctx, icon.Icon(h.Icon, "h-4 w-4 flex-shrink-0 text-primary"))
			m.Element("span", h.Label, markup.Attr("class", "min-w-0 whitespace-nowrap text-foreground/90"))
			m.Close("div")
			m.Close("div")
		}
		m.Close("div")
		m.Close("div")

		m.Open("div", markup.Attr("class", "min-w-0 md:col-span-5"))
		m.Component(ctx, IconRing(ring))
		m.Close("div")

		m.Close("div")
		m.Close("div")
		m.Close("section")
	})
}
