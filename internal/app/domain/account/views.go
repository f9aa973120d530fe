package account

import (
	"context"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/button"
	"github.com/FACorreiaa/eonics-site/internal/app/components/dialog"
	"github.com/FACorreiaa/eonics-site/internal/app/components/icon"
	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
	"github.com/FACorreiaa/eonics-site/internal/app/domain/recovery"
	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

const (
	DialogID        = "account-dialog"
	BodyID          = "account-dialog-body"
	TriggerID       = "account-trigger"
	MobileTriggerID = "account-trigger-mobile"
)

type Tab string

const (
	TabLogin  Tab = "login"
	TabSignup Tab = "signup"
	TabForgot Tab = "forgot"
)

var tabs = []struct {
	tab   Tab
	label string
}{
	{TabLogin, "Login"},
	{TabSignup, "Sign up"},
	{TabForgot, "Forgot password"},
}

// ParseTab maps the query value onto a tab, defaulting to login.
func ParseTab(raw string) Tab {
	switch Tab(raw) {
	case TabSignup, TabForgot:
		return Tab(raw)
	default:
		return TabLogin
	}
}

// BodyProps is everything the dialog body needs to render one tab. Name and
// Email echo rejected input back into the form.
type BodyProps struct {
	Tab     Tab
	Session models.Session
	Flow    recovery.Flow
	Now     time.Time
	Name    string
	Email   string
}

const (
	labelClass = "text-sm text-muted-foreground"
	inputClass = "flex h-10 w-full rounded-md border border-input bg-background/40 px-3 py-2 text-sm placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring"
)

// Trigger is the navbar button that opens the dialog. Once signed in it shows
// the display name instead of "Login".
func Trigger(id string, session models.Session, oob bool) templ.Component {
	attrs := dialog.TriggerAttr(DialogID)
	if oob {
		attrs["hx-swap-oob"] = "true"
	}
	label, iconName := "Login", "log-in"
	if session.Authenticated {
		label, iconName = session.DisplayName, "user-round"
		attrs["data-authenticated"] = "true"
	}
	return button.Button(button.Props{
		ID:         id,
		Variant:    button.VariantGold,
		Attributes: attrs,
	}, button.Label(label), icon.Icon(iconName, ""))
}

// TriggersOOB refreshes both navbar triggers after the session changed.
func TriggersOOB(session models.Session) templ.Component {
	return templ.Join(
		Trigger(TriggerID, session, true),
		Trigger(MobileTriggerID, session, true),
	)
}

// Dialog is the account dialog with its body, opened by Trigger.
func Dialog(p BodyProps) templ.Component {
	return dialog.Dialog(dialog.Props{
		ID:          DialogID,
		Title:       "Account",
		Description: "UI-only demo (no backend).",
		Class:       "max-w-md",
	}, Body(p))
}

// Body renders the tab strip and the active tab. Tab switches and form posts
// replace the whole body.
func Body(p BodyProps) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div",
			markup.Attr("id", BodyID),
			markup.Flag(recovery.HostAttr, true),
			markup.Attr("data-tab", string(p.Tab)),
		)

		if p.Session.Authenticated {
			m.Open("p", markup.Attr("class", "mb-3 text-sm text-muted-foreground"))
			m.Text("Signed in as ")
			m.Element("span", p.Session.DisplayName, markup.Attr("class", "session-name font-medium text-primary"))
			m.Close("p")
		}

		m.Open("div", markup.Attr("class", "grid grid-cols-3 gap-1 rounded-md bg-muted/40 p-1"), markup.Attr("role", "tablist"))
		for _, t := range tabs {
			active := t.tab == p.Tab
			class := "rounded px-2 py-1.5 text-xs font-medium text-muted-foreground transition hover:text-primary"
			if active {
				class = "rounded bg-background px-2 py-1.5 text-xs font-medium text-primary shadow"
			}
			m.Element("button", t.label,
				markup.Attr("type", "button"),
				markup.Attr("role", "tab"),
				markup.Attr("class", class),
				markup.Attr("aria-selected", strconv.FormatBool(active)),
				markup.Attr("hx-get", "/fragments/account?tab="+string(t.tab)),
				markup.Attr("hx-target", "#"+BodyID),
				markup.Attr("hx-swap", "outerHTML"),
			)
		}
		m.Close("div")

		switch p.Tab {
		case TabSignup:
			m.Component(ctx, signupForm(p))
		case TabForgot:
			m.Component(ctx, recovery.View(p.Flow, p.Now))
		default:
			m.Component(ctx, loginForm(p))
		}

		m.Close("div")
	})
}

func formAttrs(path string) string {
	return markup.Attrs(templ.Attributes{
		"hx-post":   path,
		"hx-target": "#" + BodyID,
		"hx-swap":   "outerHTML",
	})
}

func loginForm(p BodyProps) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("form", markup.Attr("class", "mt-4 grid gap-3"), formAttrs("/account/login"))
		field(m, "login-email", "email", "text", "Email / Username", "username", "you@college.edu", p.Email)
		field(m, "login-password", "password", "password", "Password", "current-password", "••••••••", "")
		m.Component(ctx, button.Button(button.Props{Type: button.TypeSubmit, Class: "mt-2"}, button.Label("Login")))
		m.Close("form")
	})
}

func signupForm(p BodyProps) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("form", markup.Attr("class", "mt-4 grid gap-3"), formAttrs("/account/signup"))
		field(m, "signup-name", "name", "text", "Name", "name", "Your name", p.Name)
		field(m, "signup-email", "email", "email", "Email", "email", "you@college.edu", p.Email)
		field(m, "signup-password", "password", "password", "Password", "new-password", "••••••••", "")
		m.Component(ctx, button.Button(button.Props{Type: button.TypeSubmit, Class: "mt-2"}, button.Label("Create account")))
		m.Close("form")
	})
}

func field(m *markup.Writer, id, name, typ, label, autocomplete, placeholder, value string) {
	m.Open("div", markup.Attr("class", "grid gap-2"))
	m.Element("label", label, markup.Attr("for", id), markup.Attr("class", labelClass))
	m.Open("input",
		markup.Attr("id", id),
		markup.Attr("name", name),
		markup.Attr("type", typ),
		markup.Attr("autocomplete", autocomplete),
		markup.Attr("placeholder", placeholder),
		markup.Attr("class", inputClass),
		markup.AttrIf("value", value),
	)
	m.Close("div")
}
