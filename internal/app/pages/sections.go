package pages

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/button"
	"github.com/FACorreiaa/eonics-site/internal/app/components/dialog"
	"github.com/FACorreiaa/eonics-site/internal/app/components/icon"
	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
	"github.com/FACorreiaa/eonics-site/internal/app/components/section"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/contact"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

// MaxGalleryImages caps the images shown in a project modal.
const MaxGalleryImages = 3

const cardClass = "glass-panel rounded-lg p-5 text-left"

func Events(items []models.EventItem) templ.Component {
	return section.Section(section.Props{
		ID:       "events",
		Title:    "Events & News",
		Subtitle: "Announcements, meetups, workshops, and club updates.",
	}, markup.Component(func(_ context.Context, m *markup.Writer) {
		m.Open("div", markup.Attr("class", "grid gap-4"))
		for _, e := range items {
			m.Open("article", markup.Attr("class", cardClass+" event-card"))
			m.Open("div", markup.Attr("class", "flex flex-wrap items-start justify-between gap-2"))
			m.Open("div")
			m.Element("h3", e.Title, markup.Attr("class", "text-lg font-semibold text-primary"))
			m.Element("p", e.Description, markup.Attr("class", "mt-1 text-sm text-muted-foreground"))
			m.Close("div")
			m.Element("p", e.Date, markup.Attr("class", "event-date text-xs text-muted-foreground"))
			m.Close("div")
			m.Close("article")
		}
		m.Close("div")
	}))
}

// GalleryImages returns at most MaxGalleryImages images in order.
func GalleryImages(p models.ProjectItem) []string {
	if len(p.Gallery) > MaxGalleryImages {
		return p.Gallery[:MaxGalleryImages]
	}
	return p.Gallery
}

func projectDialogID(p models.ProjectItem) string {
	return "project-" + p.ID
}

// Projects is the horizontally scrolling carousel. Each card opens a modal
// with the gallery and optional video / PDF links.
func Projects(items []models.ProjectItem) templ.Component {
	return section.Section(section.Props{ID: "projects", Title: "Projects"},
		markup.Component(func(ctx context.Context, m *markup.Writer) {
			m.Open("div", markup.Attr("class", "relative"))
			m.Open("div", markup.Attr("class", "projects-scroll flex snap-x snap-mandatory gap-4 overflow-x-auto pb-4"))
			for _, p := range items {
				m.Open("button",
					markup.Attr("type", "button"),
					markup.Attr("class", "project-card group relative w-[280px] flex-none snap-start text-left sm:w-[320px]"),
					markup.Attr("aria-label", "Open project "+p.Title),
					markup.Attrs(dialog.TriggerAttr(projectDialogID(p))),
				)
				m.Open("div", markup.Attr("class", "glass-panel overflow-hidden rounded-lg"))
				m.Open("div", markup.Attr("class", "relative aspect-[16/9]"))
				m.Open("img",
					markup.Attr("src", p.Cover),
					markup.Attr("alt", p.Title+" cover image"),
					markup.Attr("class", "h-full w-full object-cover grayscale transition-all duration-300 group-hover:scale-[1.03] group-hover:grayscale-0"),
					markup.Attr("loading", "eager"),
				)
				m.Close("div")
				m.Open("div", markup.Attr("class", "p-4"))
				m.Element("h3", p.Title, markup.Attr("class", "text-base font-semibold text-primary"))
				m.Element("p", p.Description, markup.Attr("class", "mt-1 text-sm text-muted-foreground"))
				m.Close("div")
				m.Close("div")
				m.Close("button")
			}
			m.Close("div")
			m.Close("div")

			for _, p := range items {
				m.Component(ctx, dialog.Dialog(dialog.Props{
					ID:    projectDialogID(p),
					Title: p.Title,
					Class: "max-w-3xl",
				}, projectDetails(p)))
			}
		}))
}

func projectDetails(p models.ProjectItem) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", markup.Attr("class", "grid gap-4"))
		m.Element("p", p.Details, markup.Attr("class", "text-sm text-muted-foreground"))

		m.Open("div", markup.Attr("class", "project-gallery grid gap-3 sm:grid-cols-3"))
		for i, src := range GalleryImages(p) {
			m.Open("div", markup.Attr("class", "overflow-hidden rounded-lg border border-border/60"))
			m.Open("img",
				markup.Attr("src", src),
				markup.Attr("alt", fmt.Sprintf("%s image %d", p.Title, i+1)),
				markup.Attr("class", "h-full w-full object-cover"),
				markup.Attr("loading", "lazy"),
			)
			m.Close("div")
		}
		m.Close("div")

		if p.VideoURL != "" || p.PDFURL != "" {
			m.Open("div", markup.Attr("class", "grid gap-3 sm:grid-cols-2"))
			if p.VideoURL != "" {
				m.Component(ctx, resourceCard("Watch Video", "View project demo.",
					button.Props{Href: p.VideoURL, Target: "_blank", Variant: button.VariantGoldOutline, Size: button.SizeSm, Class: "project-video"},
					"play", "Watch"))
			}
			if p.PDFURL != "" {
				m.Component(ctx, resourceCard("Download PDF", "Opens in a new tab.",
					button.Props{Href: p.PDFURL, Target: "_blank", Size: button.SizeSm, Class: "project-pdf"},
					"file-text", "PDF"))
			}
			m.Close("div")
		}
		m.Close("div")
	})
}

func resourceCard(title, note string, link button.Props, iconName, label string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", markup.Attr("class", "glass-panel rounded-lg p-4"))
		m.Open("div", markup.Attr("class", "flex items-center justify-between gap-3"))
		m.Open("div")
		m.Element("p", title, markup.Attr("class", "text-sm font-medium text-foreground/90"))
		m.Element("p", note, markup.Attr("class", "text-xs text-muted-foreground"))
		m.Close("div")
		m.Component(ctx, button.Button(link, icon.Icon(iconName, ""), button.Label(label)))
		m.Close("div")
		m.Close("div")
	})
}

func competitionDialogID(c models.CompetitionItem) string {
	return "competition-" + c.ID
}

func Competitions(items []models.CompetitionItem) templ.Component {
	return section.Section(section.Props{
		ID:       "competitions",
		Title:    "Competitions",
		Subtitle: "Join the next challenge. Register externally, or view details.",
	}, markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", markup.Attr("class", "grid gap-4 md:grid-cols-2 xl:grid-cols-3"))
		for _, c := range items {
			m.Open("article", markup.Attr("class", cardClass+" competition-card"), markup.Attr("data-id", c.ID))
			m.Element("h3", c.Name, markup.Attr("class", "text-lg font-semibold text-primary"))
			m.Element("p", c.Description, markup.Attr("class", "mt-1 text-sm text-muted-foreground"))
			m.Open("div", markup.Attr("class", "mt-5 flex flex-wrap gap-2"))
			m.Component(ctx, button.Button(button.Props{
				Href:   c.LinkURL,
				Target: "_blank",
				Size:   button.SizeSm,
				Class:  "competition-link min-h-[36px]",
			}, button.Label(c.LinkLabel), icon.Icon("external-link", "")))
			m.Component(ctx, button.Button(button.Props{
				Variant:    button.VariantGoldOutline,
				Size:       button.SizeSm,
				Class:      "min-h-[36px]",
				Attributes: dialog.TriggerAttr(competitionDialogID(c)),
			}, button.Label("Details"), icon.Icon("info", "")))
			m.Close("div")
			m.Close("article")

			m.Component(ctx, dialog.Dialog(dialog.Props{
				ID:    competitionDialogID(c),
				Title: c.Name,
				Class: "max-w-2xl",
			}, competitionDetails(c.Details)))
		}
		m.Close("div")
	}))
}

func competitionDetails(d models.CompetitionDetails) templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		rows := []struct{ label, value string }{
			{"Registration", d.RegistrationStart + " → " + d.RegistrationEnd},
			{"Competition date", d.CompetitionDate},
			{"Theme", d.Theme},
			{"Platform", d.Platform},
		}
		m.Open("div", markup.Attr("class", "grid gap-4 text-sm"))
		m.Open("dl", markup.Attr("class", "grid gap-2 rounded-lg border border-border/60 bg-card/35 p-4"))
		for _, r := range rows {
			m.Open("div", markup.Attr("class", "flex flex-wrap justify-between gap-2"))
			m.Element("dt", r.label, markup.Attr("class", "text-muted-foreground"))
			m.Element("dd", r.value, markup.Attr("class", "text-foreground/90"))
			m.Close("div")
		}
		m.Close("dl")
		m.Open("div")
		m.Element("p", "Rules / overview", markup.Attr("class", "text-sm font-medium text-primary"))
		m.Element("p", d.Rules, markup.Attr("class", "competition-rules mt-1 text-sm text-muted-foreground"))
		m.Close("div")
		m.Close("div")
	})
}

func Training(items []models.TrainingItem) templ.Component {
	return section.Section(section.Props{
		ID:       "training",
		Title:    "Training & Resources",
		Subtitle: "Clean, minimal cards. Curated learning paths you can replace anytime.",
	}, markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", markup.Attr("class", "grid gap-4 sm:grid-cols-2 lg:grid-cols-4"))
		for _, t := range items {
			tag, attrs := "div", []string{markup.Attr("class", "training-card block w-full rounded-lg")}
			if t.Href != "" {
				tag = "a"
				attrs = append(attrs,
					markup.Attr("href", t.Href),
					markup.Attr("target", "_blank"),
					markup.Attr("rel", "noreferrer"),
				)
			}
			attrs = append(attrs,
				markup.Attr("aria-label", fmt.Sprintf("%s (%s)", t.Title, t.Category)),
				markup.Attr("data-category", string(t.Category)),
			)
			m.Open(tag, attrs...)
			m.Open("div", markup.Attr("class", "glass-panel flex h-[84px] w-full items-start justify-between gap-3 overflow-hidden rounded-lg p-5 text-left sm:h-[92px] lg:h-[112px]"))
			m.Open("div", markup.Attr("class", "min-w-0"))
			m.Element("p", t.Title, markup.Attr("class", "truncate text-sm font-semibold text-foreground/95"))
			m.Element("p", string(t.Category), markup.Attr("class", "mt-1 text-xs text-muted-foreground"))
			m.Close("div")
			m.Component(ctx, icon.Icon(t.Category.Icon(), "h-5 w-5 flex-shrink-0 text-primary md:h-6 md:w-6"))
			m.Close("div")
			m.Close(tag)
		}
		m.Close("div")
	}))
}

func Contact(email string, socials []models.SocialLink) templ.Component {
	return section.Section(section.Props{
		ID:       "contact",
		Title:    "Contact Us",
		Subtitle: "Send a message. Fast, simple and clean.",
	}, markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", markup.Attr("class", "grid gap-6 md:grid-cols-12"))

		m.Open("div", markup.Attr("class", "glass-panel rounded-lg p-6 text-left md:col-span-7"))
		m.Component(ctx, contact.Form(contact.FormProps{Email: email}))
		m.Close("div")

		m.Open("div", markup.Attr("class", "glass-panel rounded-lg p-6 text-left md:col-span-5"))
		m.Element("h3", "Socials", markup.Attr("class", "text-lg font-semibold text-primary"))
		m.Element("p", "Follow us for builds, wins, and workshop drops.", markup.Attr("class", "mt-1 text-sm text-muted-foreground"))
		m.Open("div", markup.Attr("class", "mt-5 grid gap-3"))
		for _, s := range socials {
			m.Open("a",
				markup.Attr("href", s.Href),
				markup.Attr("target", "_blank"),
				markup.Attr("rel", "noreferrer"),
				markup.Attr("class", "social-link group flex items-center justify-between rounded-lg border border-border/60 bg-card/35 px-4 py-3 transition hover:bg-card/55"),
			)
			m.Open("div", markup.Attr("class", "flex items-center gap-3"))
			m.Component(ctx, icon.Icon(s.Icon, "h-4 w-4 text-primary"))
			m.Element("span", s.Label, markup.Attr("class", "text-sm text-foreground/90"))
			m.Close("div")
			m.Component(ctx, icon.Icon("external-link", "h-4 w-4 text-muted-foreground group-hover:text-primary"))
			m.Close("a")
		}
		m.Close("div")
		m.Close("div")

		m.Close("div")
	}))
}
