package recovery

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/eonics-site/internal/app/components/button"
	"github.com/FACorreiaa/eonics-site/internal/app/components/markup"
)

const (
	// FlowID is the element every wizard form swaps.
	FlowID = "recovery-flow"
	// CountdownID is the polled resend countdown inside the otp step.
	CountdownID = "resend-countdown"
	// HostAttr marks the element "back to login" replaces.
	HostAttr = "data-recovery-host"
)

const (
	labelClass = "text-sm text-muted-foreground"
	inputClass = "flex h-10 w-full rounded-md border border-input bg-background/40 px-3 py-2 text-sm placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring"
	noteClass  = "text-sm text-muted-foreground"
)

func post(path string) templ.Attributes {
	return templ.Attributes{
		"hx-post":   path,
		"hx-target": "#" + FlowID,
		"hx-swap":   "outerHTML",
	}
}

// View renders the wizard at its current step.
func View(f Flow, now time.Time) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div",
			markup.Attr("id", FlowID),
			markup.Attr("class", "mt-4 grid gap-4"),
			markup.Attr("data-step", string(f.Step())),
		)

		m.Open("div", markup.Attr("class", "flex items-center justify-between gap-3"))
		m.Element("p", f.Title(), markup.Attr("class", "text-sm font-medium text-primary"))
		m.Component(ctx, backButton("Back to login", button.VariantLink, "h-auto p-0 text-xs"))
		m.Close("div")

		switch f.Step() {
		case StepOTP:
			m.Component(ctx, otpStep(f, now))
		case StepReset:
			m.Component(ctx, resetStep())
		case StepDone:
			m.Component(ctx, doneStep(f))
		default:
			m.Component(ctx, emailStep(f))
		}

		m.Close("div")
	})
}

func backButton(label string, variant button.Variant, class string) templ.Component {
	return button.Button(button.Props{
		Variant: variant,
		Class:   class,
		Attributes: templ.Attributes{
			"hx-post":   "/recovery/back",
			"hx-target": "closest [" + HostAttr + "]",
			"hx-swap":   "outerHTML",
		},
	}, button.Label(label))
}

func emailStep(f Flow) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("form", markup.Attr("class", "grid gap-3"), markup.Attrs(post("/recovery/email")))
		m.Open("div", markup.Attr("class", "grid gap-2"))
		m.Element("label", "Registered email address", markup.Attr("for", "forgot-email"), markup.Attr("class", labelClass))
		m.Open("input",
			markup.Attr("id", "forgot-email"),
			markup.Attr("name", "email"),
			markup.Attr("type", "email"),
			markup.Attr("autocomplete", "email"),
			markup.Attr("placeholder", "you@college.edu"),
			markup.Attr("class", inputClass),
			markup.Attr("value", f.Email()),
			markup.Attr("maxlength", strconv.Itoa(MaxEmailLength)),
		)
		m.Close("div")
		m.Component(ctx, button.Button(button.Props{Type: button.TypeSubmit, Class: "mt-2"}, button.Label("Send OTP")))
		if f.SentMessage() != "" {
			m.Element("p", f.SentMessage(), markup.Attr("class", noteClass))
		}
		m.Close("form")
	})
}

func otpStep(f Flow, now time.Time) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("form", markup.Attr("class", "grid gap-3"), markup.Attrs(post("/recovery/otp")))
		if f.SentMessage() != "" {
			m.Element("p", f.SentMessage(), markup.Attr("class", noteClass))
		}
		m.Open("div", markup.Attr("class", "grid gap-2"))
		m.Element("label", "OTP Verification", markup.Attr("for", "forgot-otp"), markup.Attr("class", labelClass))
		m.Open("div", markup.Attr("class", "flex flex-wrap items-center gap-3"))
		m.Open("input",
			markup.Attr("id", "forgot-otp"),
			markup.Attr("name", "otp"),
			markup.Attr("type", "text"),
			markup.Attr("inputmode", "numeric"),
			markup.Attr("autocomplete", "one-time-code"),
			markup.Attr("placeholder", "000000"),
			markup.Attr("class", inputClass+" max-w-[10rem] tracking-[0.5em]"),
		)
		m.Element("p", fmt.Sprintf("Demo: enter any %d digits", OTPLength), markup.Attr("class", "text-xs text-muted-foreground"))
		m.Close("div")
		m.Close("div")
		m.Component(ctx, button.Button(button.Props{Type: button.TypeSubmit, Class: "mt-2"}, button.Label("Verify OTP")))
		m.Component(ctx, Countdown(f, now))
		if f.VerifiedMessage() != "" {
			m.Element("p", f.VerifiedMessage(), markup.Attr("class", noteClass))
		}
		m.Close("form")
	})
}

// Countdown renders the resend control. While the cooldown runs it polls
// itself every second; once it reaches zero the polling attribute is gone.
func Countdown(f Flow, now time.Time) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		remaining := f.ResendRemaining(now)
		cooling := remaining > 0

		attrs := templ.Attributes{
			"id":    CountdownID,
			"class": "flex flex-wrap items-center justify-between gap-2",
		}
		if cooling {
			attrs["hx-get"] = "/recovery/cooldown"
			attrs["hx-trigger"] = "every 1s"
			attrs["hx-target"] = "this"
			attrs["hx-swap"] = "outerHTML"
		}
		m.Open("div", markup.Attrs(attrs))

		resend := post("/recovery/resend")
		m.Component(ctx, button.Button(button.Props{
			Variant:    button.VariantGoldOutline,
			Disabled:   cooling,
			Attributes: resend,
		}, button.Label("Resend OTP")))

		if cooling {
			m.Open("p", markup.Attr("class", "text-xs text-muted-foreground"))
			m.Text("You can resend in ")
			m.Element("span", FormatCountdown(remaining), markup.Attr("class", "countdown tabular-nums"))
			m.Close("p")
		} else {
			m.Element("p", "Didn't receive the code?", markup.Attr("class", "text-xs text-muted-foreground"))
		}
		m.Close("div")
	})
}

func resetStep() templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("form", markup.Attr("class", "grid gap-3"), markup.Attrs(post("/recovery/reset")))
		passwordField(m, "forgot-new-password", "new_password", "New password")
		passwordField(m, "forgot-confirm-password", "confirm_password", "Confirm password")
		m.Component(ctx, button.Button(button.Props{Type: button.TypeSubmit, Class: "mt-2"}, button.Label("Reset Password")))
		m.Close("form")
	})
}

func passwordField(m *markup.Writer, id, name, label string) {
	m.Open("div", markup.Attr("class", "grid gap-2"))
	m.Element("label", label, markup.Attr("for", id), markup.Attr("class", labelClass))
	m.Open("input",
		markup.Attr("id", id),
		markup.Attr("name", name),
		markup.Attr("type", "password"),
		markup.Attr("autocomplete", "new-password"),
		markup.Attr("placeholder", "••••••••"),
		markup.Attr("class", inputClass),
		markup.Attr("maxlength", "128"),
	)
	m.Close("div")
}

func doneStep(f Flow) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", markup.Attr("class", "grid gap-3"))
		if f.ResetMessage() != "" {
			m.Element("p", f.ResetMessage(), markup.Attr("class", noteClass))
		}
		m.Open("div", markup.Attr("class", "flex flex-wrap gap-2"))
		m.Component(ctx, backButton("Return to Login", button.VariantGold, ""))
		m.Component(ctx, button.Button(button.Props{
			Variant:    button.VariantGoldOutline,
			Attributes: post("/recovery/start-over"),
		}, button.Label("Start over")))
		m.Close("div")
		m.Close("div")
	})
}
