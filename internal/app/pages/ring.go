package pages

import (
	"context"
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/icon"
	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

const (
	RingID              = "icon-ring"
	DefaultIconsPerRing = 6
	maxRings            = 3
)

// ringGeometry holds size (% of the container), icon radius (% of the
// container's short side) and rotation period for each ring, outermost first.
var ringGeometry = [maxRings]struct {
	size     int
	radius   int
	duration int
	reverse  bool
}{
	{size: 100, radius: 48, duration: 36},
	{size: 68, radius: 33, duration: 60, reverse: true},
	{size: 38, radius: 18, duration: 75},
}

// Rings splits items into groups of perRing and keeps at most three groups.
func Rings(items []models.RingItem, perRing int) [][]models.RingItem {
	if perRing <= 0 {
		perRing = DefaultIconsPerRing
	}
	var out [][]models.RingItem
	for i := 0; i < len(items) && len(out) < maxRings; i += perRing {
		end := min(i+perRing, len(items))
		out = append(out, items[i:end])
	}
	return out
}

// ActiveRingItem resolves id to an item, falling back to the first one.
func ActiveRingItem(items []models.RingItem, id string) (models.RingItem, bool) {
	if len(items) == 0 {
		return models.RingItem{}, false
	}
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return items[0], true
}

type RingProps struct {
	Items    []models.RingItem
	ActiveID string
	PerRing  int
	Logo     string
	LogoAlt  string
}

// IconRing renders the concentric rings. Clicking an icon re-renders the ring
// with that icon active; the client script opens its page in a new tab.
func IconRing(p RingProps) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		rings := Rings(p.Items, p.PerRing)
		// Resolved against every item, so an item past the last ring can
		// still be the active one even though it has no icon.
		active, _ := ActiveRingItem(p.Items, p.ActiveID)

		m.Open("div",
			markup.Attr("id", RingID),
			markup.Attr("class", "icon-ring relative mx-auto aspect-square w-full max-w-sm"),
			markup.AttrIf("data-active", active.ID),
		)
		m.Open("div", markup.Attr("class", "ring-glow absolute inset-0 rounded-full"), markup.Attr("aria-hidden", "true"))
		m.Close("div")

		for idx, geo := range ringGeometry {
			class := "ring absolute left-1/2 top-1/2 rounded-full"
			if geo.reverse {
				class += " ring-reverse"
			}
			m.Open("div",
				markup.Attr("class", class),
				markup.Attr("data-ring", fmt.Sprint(idx)),
				markup.Attr("style", fmt.Sprintf("width:%d%%;height:%d%%;--spin:%ds", geo.size, geo.size, geo.duration)),
			)
			if idx < len(rings) {
				ring := rings[idx]
				for i, it := range ring {
					m.Component(ctx, ringIcon(it, it.ID == active.ID, 360/len(ring)*i, geo.radius))
				}
			}
			m.Close("div")
		}

		m.Open("div", markup.Attr("class", "ring-center absolute inset-[25%] z-10 flex items-center justify-center rounded-3xl border border-border/60 bg-card/35 backdrop-blur-xl"))
		m.Open("img",
			markup.Attr("src", p.Logo),
			markup.Attr("alt", p.LogoAlt),
			markup.Attr("class", "h-[80%] w-[80%] rounded-2xl object-contain"),
			markup.Attr("loading", "eager"),
		)
		m.Close("div")
		m.Close("div")
	})
}

func ringIcon(it models.RingItem, active bool, angle, radius int) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		class := "ring-icon absolute left-1/2 top-1/2 grid h-9 w-9 place-items-center rounded-full border border-border/60 bg-card/40 text-foreground/90 backdrop-blur-xl transition"
		iconClass := "h-4 w-4 text-muted-foreground"
		if active {
			class += " is-active"
			iconClass = "h-4 w-4 text-primary"
		}
		m.Open("button",
			markup.Attr("type", "button"),
			markup.Attr("class", class),
			markup.Attr("style", fmt.Sprintf("--angle:%ddeg;--radius:%d", angle, radius)),
			markup.Attr("aria-label", it.Label),
			markup.Attr("aria-pressed", fmt.Sprint(active)),
			markup.Attr("title", it.Label),
			markup.Attr("data-id", it.ID),
			markup.Attr("data-href", it.Href),
			markup.Attr("hx-get", "/fragments/ring?active="+url.QueryEscape(it.ID)),
			markup.Attr("hx-target", "#"+RingID),
			markup.Attr("hx-swap", "outerHTML"),
		)
		m.Component(ctx, icon.Icon(it.Icon, iconClass))
		m.Close("button")
	})
}
