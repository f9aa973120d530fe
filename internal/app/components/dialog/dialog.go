package dialog

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
)

type Props struct {
	ID          string
	Title       string
	Description string
	Class       string // width utilities, e.g. max-w-2xl
}

// Dialog renders a native <dialog>. Triggers open it with
// data-dialog-open="<id>"; the client script wires them up.
func Dialog(p Props, body templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		class := "dialog w-full rounded-xl border border-border/60 bg-card p-6 text-left text-foreground backdrop:bg-black/70"
		if p.Class != "" {
			class += " " + p.Class
		}
		m.Open("dialog",
			markup.Attr("id", p.ID),
			markup.Attr("class", class),
			markup.Attr("aria-labelledby", p.ID+"-title"),
		)
		m.Open("div", markup.Attr("class", "flex items-start justify-between gap-4"))
		m.Open("div")
		m.Element("h2", p.Title, markup.Attr("id", p.ID+"-title"), markup.Attr("class", "text-lg font-semibold text-primary"))
		if p.Description != "" {
			m.Element("p", p.Description, markup.Attr("class", "mt-1 text-sm text-muted-foreground"))
		}
		m.Close("div")
		m.Open("form", markup.Attr("method", "dialog"))
		m.Element("button", "×",
			markup.Attr("type", "submit"),
			markup.Attr("class", "text-xl leading-none text-muted-foreground hover:text-primary"),
			markup.Attr("aria-label", "Close"),
		)
		m.Close("form")
		m.Close("div")
		m.Open("div", markup.Attr("class", "mt-4"))
		m.Component(ctx, body)
		m.Close("div")
		m.Close("dialog")
	})
}

// TriggerAttr is the attribute a button needs to open dialog id.
func TriggerAttr(id string) templ.Attributes {
	return templ.Attributes{"data-dialog-open": id}
}
