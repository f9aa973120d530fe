package pages

import (
	"context"
	"encoding/json"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
	"github.com/FACorreiaa/eonics-site/internal/app/components/toast"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/account"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/recovery"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
	"github.com/FACorreiaa/eonics-site/internal/pkg/viewtoken"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	lucideSrc   = "https://unpkg.com/lucide@0.469.0/dist/umd/lucide.min.js"
	tailwindSrc = "https://unpkg.com/@tailwindcss/browser@4.0.0"
)

// themeTokens maps the colour variables in eonics.css onto utility names.
const themeTokens = `@theme {
  --color-background: hsl(var(--background));
  --color-foreground: hsl(var(--foreground));
  --color-card: hsl(var(--card));
  --color-muted: hsl(var(--muted));
  --color-muted-foreground: hsl(var(--muted-foreground));
  --color-border: hsl(var(--border));
  --color-input: hsl(var(--input));
  --color-ring: hsl(var(--ring));
  --color-primary: hsl(var(--primary));
  --color-primary-foreground: hsl(var(--primary-foreground));
  --color-accent: hsl(var(--accent));
  --color-accent-foreground: hsl(var(--accent-foreground));
  --color-destructive: hsl(var(--destructive));
  --color-destructive-foreground: hsl(var(--destructive-foreground));
}`

// htmxConfig lets 409 and 422 fragments swap like successes so rejected forms
// re-render with their toast.
const htmxConfig = `{"responseHandling":[` +
	`{"code":"204","swap":false},` +
	`{"code":"[23]..","swap":true},` +
	`{"code":"409|422","swap":true,"error":false},` +
	`{"code":"[45]..","swap":false,"error":true}]}`

// Layout binds the catalog into a layout func for the base handler.
func Layout(c models.Catalog) func(models.LayoutTempl) templ.Component {
	return func(data models.LayoutTempl) templ.Component {
		return LayoutPage(c, data)
	}
}

// LayoutPage is the full document around page content.
func LayoutPage(c models.Catalog, data models.LayoutTempl) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		headers, err := json.Marshal(map[string]string{viewtoken.HeaderName: data.ViewToken})
		if err != nil {
			headers = []byte("{}")
		}

		m.Raw("<!doctype html>")
		m.Open("html", markup.Attr("lang", "en"), markup.Attr("class", "dark scroll-smooth"))
		m.Open("head")
		m.Open("meta", markup.Attr("charset", "utf-8"))
		m.Open("meta", markup.Attr("name", "viewport"), markup.Attr("content", "width=device-width, initial-scale=1"))
		m.Open("meta", markup.Attr("name", "description"), markup.Attr("content", c.ClubName+" - "+c.Tagline))
		m.Open("meta", markup.Attr("name", "htmx-config"), markup.Attr("content", htmxConfig))
		m.Element("title", data.Title)
		m.Open("link", markup.Attr("rel", "icon"), markup.Attr("href", c.Logo))
		m.Open("link", markup.Attr("rel", "stylesheet"), markup.Attr("href", "/assets/css/eonics.css"))
		m.Open("style", markup.Attr("type", "text/tailwindcss"))
		m.Raw(themeTokens)
		m.Close("style")
		m.Open("script", markup.Attr("src", tailwindSrc))
		m.Close("script")
		m.Open("script", markup.Attr("src", htmxSrc), markup.Flag("defer", true))
		m.Close("script")
		m.Open("script", markup.Attr("src", lucideSrc), markup.Flag("defer", true))
		m.Close("script")
		m.Open("script", markup.Attr("src", "/assets/js/eonics.js"), markup.Flag("defer", true))
		m.Close("script")
		m.Close("head")

		m.Open("body",
			markup.Attr("class", "min-h-screen bg-background text-foreground"),
			markup.Attr("hx-headers", string(headers)),
		)
		m.Component(ctx, Navbar(c, data.Nav, data.Session))
		m.Component(ctx, account.Dialog(account.BodyProps{
			Tab:     account.TabLogin,
			Session: data.Session,
			Flow:    recovery.NewFlow(recovery.DefaultResendCooldown),
		}))
		m.Open("main")
		m.Component(ctx, data.Content)
		m.Close("main")
		m.Component(ctx, Footer(c, data.Year))
		m.Component(ctx, BackToTop(data.BackToTopOffset))
		m.Component(ctx, toast.Region())
		m.Close("body")
		m.Close("html")
	})
}

// Landing is the single page: hero followed by every section.
func Landing(c models.Catalog, activeRingID string) templ.Component {
	return templ.Join(
		Hero(c, RingProps{
			Items:    c.Ring,
			ActiveID: activeRingID,
			PerRing:  DefaultIconsPerRing,
			Logo:     c.Logo,
			LogoAlt:  c.ClubName + " club logo",
		}),
		Events(c.Events),
		Projects(c.Projects),
		Competitions(c.Competitions),
		Training(c.Training),
		Contact(c.ContactEmail, c.Socials),
	)
}
