package button

import (
	"context"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
)

type Variant string

const (
	VariantGold        Variant = "gold"
	VariantGoldOutline Variant = "goldOutline"
	VariantGhost       Variant = "ghost"
	VariantLink        Variant = "link"
	VariantDestructive Variant = "destructive"
)

type Size string

const (
	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeLg      Size = "lg"
	SizeIcon    Size = "icon"
)

type Type string

const (
	TypeButton Type = "button"
	TypeSubmit Type = "submit"
	TypeReset  Type = "reset"
)

type Props struct {
	ID         string
	Type       Type
	Variant    Variant
	Size       Size
	Class      string
	Href       string // renders an anchor instead of a button
	Target     string
	Disabled   bool
	Attributes templ.Attributes
}

const baseClass = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50 [&_svg]:size-4 [&_svg]:shrink-0"

func variantClass(v Variant) string {
	switch v {
	case VariantGoldOutline:
		return "border border-primary/60 bg-transparent text-primary hover:bg-primary/10"
	case VariantGhost:
		return "bg-transparent hover:bg-accent hover:text-accent-foreground"
	case VariantLink:
		return "text-primary underline-offset-4 hover:underline"
	case VariantDestructive:
		return "bg-destructive text-destructive-foreground hover:bg-destructive/90"
	default:
		return "bg-primary text-primary-foreground shadow gold-glow hover:bg-primary/90"
	}
}

func sizeClass(s Size) string {
	switch s {
	case SizeSm:
		return "h-9 rounded-md px-3"
	case SizeLg:
		return "h-10 rounded-md px-8"
	case SizeIcon:
		return "h-10 w-10"
	default:
		return "h-10 px-4 py-2"
	}
}

// Classes returns the merged class list for p; later classes win conflicts.
func Classes(p Props) string {
	return twmerge.Merge(baseClass, variantClass(p.Variant), sizeClass(p.Size), p.Class)
}

// Button renders a <button>, or an <a> when Href is set. External targets
// get rel="noreferrer".
func Button(p Props, children ...templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		if p.Href != "" {
			rel := ""
			if p.Target == "_blank" {
				rel = "noreferrer"
			}
			m.Open("a",
				markup.AttrIf("id", p.ID),
				markup.Attr("href", p.Href),
				markup.AttrIf("target", p.Target),
				markup.AttrIf("rel", rel),
				markup.Attr("class", Classes(p)),
				markup.Attrs(p.Attributes),
			)
			for _, child := range children {
				m.Component(ctx, child)
			}
			m.Close("a")
			return
		}

		typ := p.Type
		if typ == "" {
			typ = TypeButton
		}
		m.Open("button",
			markup.AttrIf("id", p.ID),
			markup.Attr("type", string(typ)),
			markup.Attr("class", Classes(p)),
			markup.Flag("disabled", p.Disabled),
			markup.Attrs(p.Attributes),
		)
		for _, child := range children {
			m.Component(ctx, child)
		}
		m.Close("button")
	})
}

// Label is a text child for Button.
func Label(text string) templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		m.Text(text)
	})
}
