package pages

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/eonics-site/internal/app/components/button"
	"github.com/FACorreiaa/eonics-site/internal/app/components/icon"
	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/account"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

const BackToTopID = "back-to-top"

func sectionLink(id, label, class string) string {
	return markup.Attr("href", "#"+id) + markup.Attr("class", class) + markup.Flag("data-scroll", true) +
		markup.Attr("data-label", label)
}

// Navbar is the fixed header: brand, in-page links, account trigger and a
// collapsible menu for small screens.
func Navbar(c models.Catalog, nav models.Navigation, session models.Session) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("header", markup.Attr("class", "navbar fixed inset-x-0 top-0 z-50"))
		m.Open("div", markup.Attr("class", "pointer-events-none absolute inset-0 bg-background/70 backdrop-blur-xl"))
		m.Close("div")
		m.Open("div", markup.Attr("class", "container relative flex h-16 items-center justify-between gap-4 px-4 sm:px-6 md:h-20"))

		m.Open("a",
			markup.Attr("href", "#home"),
			markup.Flag("data-scroll", true),
			markup.Attr("class", "group flex flex-shrink-0 items-center gap-3 text-left md:gap-4"),
			markup.Attr("aria-label", "Go to top"),
		)
		m.Open("img",
			markup.Attr("src", c.Logo),
			markup.Attr("alt", c.ClubName+" logo"),
			markup.Attr("class", "h-10 w-10 rounded-xl border border-border/60 bg-card/30 p-1.5 md:h-12 md:w-12 md:p-2"),
			markup.Attr("loading", "eager"),
		)
		m.Element("span", c.ClubName, markup.Attr("class", "text-lg font-bold tracking-wide text-primary md:text-2xl"))
		m.Close("a")

		m.Open("nav", markup.Attr("class", "ml-6 hidden items-center gap-1 lg:flex"), markup.Attr("aria-label", "Primary"))
		for _, item := range nav.Items {
			m.Open("a", sectionLink(item.ID, item.Label, "story-link rounded-md px-3 py-2 text-sm text-foreground/80 transition hover:text-primary md:px-4 md:text-base"))
			m.Text(item.Label)
			m.Close("a")
		}
		m.Close("nav")

		m.Open("div", markup.Attr("class", "ml-auto hidden items-center gap-2 lg:flex"))
		m.Component(ctx, account.Trigger(account.TriggerID, session, false))
		m.Close("div")

		m.Open("details", markup.Attr("class", "mobile-menu relative lg:hidden"))
		m.Open("summary",
			markup.Attr("class", "grid h-10 w-10 cursor-pointer list-none place-items-center rounded-md border border-border/60"),
			markup.Attr("aria-label", "Open menu"),
		)
		m.Component(ctx, icon.Icon("menu", "h-5 w-5"))
		m.Close("summary")
		m.Open("div", markup.Attr("class", "absolute right-0 mt-2 grid w-64 gap-1 rounded-lg border border-border/60 bg-card p-3 shadow-lg"))
		for _, item := range nav.Items {
			m.Open("a", sectionLink(item.ID, item.Label, "rounded-md px-3 py-2 text-sm text-foreground/80 hover:text-primary"))
			m.Text(item.Label)
			m.Close("a")
		}
		m.Component(ctx, account.Trigger(account.MobileTriggerID, session, false))
		m.Close("div")
		m.Close("details")

		m.Close("div")
		m.Close("header")
	})
}

// QuickLinkLabel turns a section id into its footer label.
func QuickLinkLabel(id string) string {
	return cases.Title(language.English).String(id)
}

func Footer(c models.Catalog, year int) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("footer", markup.Attr("class", "border-t border-border/70 bg-background"))
		m.Open("div", markup.Attr("class", "container py-12"))
		m.Open("div", markup.Attr("class", "grid gap-10 md:grid-cols-12"))

		m.Open("div", markup.Attr("class", "md:col-span-5"))
		m.Open("div", markup.Attr("class", "flex items-center gap-4"))
		m.Open("img",
			markup.Attr("src", c.Logo),
			markup.Attr("alt", c.ClubName+" logo"),
			markup.Attr("class", "h-16 w-16 rounded-2xl border border-border/60 bg-card/30 p-2"),
			markup.Attr("loading", "lazy"),
		)
		m.Open("div")
		m.Element("p", c.ClubName, markup.Attr("class", "text-xl font-semibold text-primary"))
		m.Element("p", c.Tagline, markup.Attr("class", "text-sm text-muted-foreground"))
		m.Close("div")
		m.Close("div")
		m.Element("p", c.Motto, markup.Attr("class", "mt-4 max-w-md text-sm text-muted-foreground"))
		m.Close("div")

		m.Open("div", markup.Attr("class", "grid gap-8 sm:grid-cols-2 md:col-span-7 md:grid-cols-3"))

		m.Open("div", markup.Attr("class", "quick-links"))
		m.Element("p", "Quick links", markup.Attr("class", "text-sm font-semibold text-primary"))
		m.Open("div", markup.Attr("class", "mt-3 grid gap-2"))
		for _, id := range models.SectionIDs {
			label := QuickLinkLabel(id)
			m.Open("a", sectionLink(id, label, "w-fit text-sm text-foreground/80 transition hover:text-primary"))
			m.Text(label)
			m.Close("a")
		}
		m.Close("div")
		m.Close("div")

		m.Open("div")
		m.Element("p", "Social", markup.Attr("class", "text-sm font-semibold text-primary"))
		m.Open("div", markup.Attr("class", "mt-3 flex items-center gap-3"))
		for _, s := range c.Socials {
			m.Open("a",
				markup.Attr("href", s.Href),
				markup.Attr("target", "_blank"),
				markup.Attr("rel", "noreferrer"),
				markup.Attr("class", "footer-social grid h-10 w-10 place-items-center rounded-lg border border-border/60 bg-card/30 text-primary transition hover:bg-card/55"),
				markup.Attr("aria-label", s.Label),
			)
			m.Component(ctx, icon.Icon(s.Icon, "h-4 w-4"))
			m.Close("a")
		}
		m.Close("div")
		m.Close("div")

		m.Open("div")
		m.Element("p", "Contact", markup.Attr("class", "text-sm font-semibold text-primary"))
		m.Element("p", c.ContactEmail, markup.Attr("class", "mt-3 text-sm text-muted-foreground"))
		m.Element("p", c.Location, markup.Attr("class", "mt-1 text-xs text-muted-foreground"))
		m.Close("div")

		m.Close("div")
		m.Close("div")

		m.Open("div", markup.Attr("class", "mt-10 flex flex-wrap items-center justify-between gap-3 border-t border-border/70 pt-6"))
		m.Element("p", fmt.Sprintf("© %d %s. All rights reserved.", year, c.ClubName), markup.Attr("class", "copyright text-xs text-muted-foreground"))
		m.Element("p", "Designed in matte black • Forged in gold.", markup.Attr("class", "text-xs text-muted-foreground"))
		m.Close("div")

		m.Close("div")
		m.Close("footer")
	})
}

// BackToTop starts hidden; the client script shows it once the page has
// scrolled past data-offset pixels.
func BackToTop(offset int) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div",
			markup.Attr("id", BackToTopID),
			markup.Attr("class", "fixed bottom-5 right-5 z-50"),
			markup.Attr("data-offset", strconv.Itoa(offset)),
			markup.Flag("hidden", true),
		)
		m.Component(ctx, button.Button(button.Props{
			Size:       button.SizeIcon,
			Class:      "rounded-full",
			Attributes: templ.Attributes{"aria-label": "Back to top", "data-back-to-top": true},
		}, icon.Icon("arrow-up", "")))
		m.Close("div")
	})
}
