package toast

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

// RegionID is the element toasts are appended to.
const RegionID = "toasts"

// Region renders the fixed container toasts are appended to.
func Region() templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		m.Open("div",
			markup.Attr("id", RegionID),
			markup.Attr("class", "fixed bottom-5 left-1/2 z-[60] grid w-full max-w-sm -translate-x-1/2 gap-2 px-4"),
			markup.Attr("aria-live", "polite"),
		)
		m.Close("div")
	})
}

// Toast renders one notice. The client script removes it after
// data-auto-dismiss milliseconds.
func Toast(n models.Notice) templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		id, err := gonanoid.New(10)
		if err != nil {
			id = "toast"
		}

		variant := n.Variant
		if variant == "" {
			variant = models.NoticeDefault
		}
		class := "toast rounded-lg border border-border/60 bg-card/90 p-4 text-left shadow-lg backdrop-blur-xl"
		role := "status"
		if variant == models.NoticeDestructive {
			class = "toast rounded-lg border border-destructive/60 bg-destructive/90 p-4 text-left text-destructive-foreground shadow-lg"
			role = "alert"
		}

		m.Open("div",
			markup.Attr("id", "toast-"+id),
			markup.Attr("class", class),
			markup.Attr("role", role),
			markup.Attr("data-variant", string(variant)),
			markup.Attr("data-auto-dismiss", strconv.FormatInt(n.DisplayDuration().Milliseconds(), 10)),
		)
		m.Element("p", n.Title, markup.Attr("class", "toast-title text-sm font-semibold"))
		if n.Description != "" {
			m.Element("p", n.Description, markup.Attr("class", "toast-description mt-1 text-xs opacity-90"))
		}
		m.Close("div")
	})
}

// OOB wraps notices in an out-of-band swap that appends them to the region,
// so any fragment response can carry toasts alongside its main content.
func OOB(notices ...models.Notice) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		if len(notices) == 0 {
			return
		}
		m.Open("div", markup.Attr("hx-swap-oob", "beforeend:#"+RegionID))
		for _, n := range notices {
			m.Component(ctx, Toast(n))
		}
		m.Close("div")
	})
}
