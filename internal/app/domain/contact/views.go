package contact

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/button"
	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
)

const FormID = "contact-form"

type FormProps struct {
	Email   string
	Message string
}

func Form(p FormProps) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("form",
			markup.Attr("id", FormID),
			markup.Attr("class", "grid gap-4"),
			markup.Attr("hx-post", "/contact"),
			markup.Attr("hx-target", "this"),
			markup.Attr("hx-swap", "outerHTML"),
		)
		m.Open("div", markup.Attr("class", "grid gap-2"))
		m.Element("label", "Your message", markup.Attr("for", "message"), markup.Attr("class", "text-sm text-muted-foreground"))
		m.Element("textarea", p.Message,
			markup.Attr("id", "message"),
			markup.Attr("name", "message"),
			markup.Attr("rows", "5"),
			markup.Attr("placeholder", "Write your query..."),
			markup.Attr("class", "min-h-[112px] max-h-56 w-full resize-none overflow-y-auto rounded-md border border-input bg-background/40 px-3 py-2 text-sm"),
		)
		m.Close("div")
		m.Open("div", markup.Attr("class", "flex flex-wrap items-center justify-between gap-3"))
		m.Open("p", markup.Attr("class", "text-xs text-muted-foreground"))
		m.Text("Email: ")
		m.Element("span", p.Email, markup.Attr("class", "text-foreground/90"))
		m.Close("p")
		m.Component(ctx, button.Button(button.Props{Type: button.TypeSubmit}, button.Label("Send")))
		m.Close("div")
		m.Close("form")
	})
}
