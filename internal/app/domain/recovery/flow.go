package recovery

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

type Step string

const (
	StepEmail Step = "email"
	StepOTP   Step = "otp"
	StepReset Step = "reset"
	StepDone  Step = "done"
)

const (
	OTPLength             = 6
	MaxEmailLength        = 255
	MinPasswordLength     = 8
	DefaultResendCooldown = 30 * time.Second
)

const (
	sentMessage     = "An OTP has been sent to your registered email address."
	verifiedMessage = "OTP verified successfully."
	resetMessage    = "Your password has been successfully reset."
)

var (
	// emailChar excludes every Unicode space, not just the ASCII ones \s covers.
	emailChar    = `[^\s\v\p{Z}\x{FEFF}@]`
	emailPattern = regexp.MustCompile(`^` + emailChar + `+@` + emailChar + `+\.` + emailChar + `+$`)
	otpPattern   = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, OTPLength))
)

var (
	ErrEmailRequired    = models.NewValidationError(nil, "Email required", "Please enter your registered email address.")
	ErrEmailInvalid     = models.NewValidationError(nil, "Invalid email", "Please enter a valid email address.")
	ErrOTPInvalid       = models.NewValidationError(nil, "Invalid OTP", fmt.Sprintf("Enter the %d-digit code from your email (demo: any %d digits).", OTPLength, OTPLength))
	ErrPasswordsMissing = models.NewValidationError(nil, "Missing fields", "Please fill both password fields.")
	ErrPasswordTooShort = models.NewValidationError(nil, "Weak password", fmt.Sprintf("Use at least %d characters.", MinPasswordLength))
	ErrPasswordMismatch = models.NewValidationError(nil, "Passwords don't match", "Please re-check and try again.")
	ErrResendTooSoon    = models.NewValidationError(models.ErrCoolingDown, "Please wait", "You can request a new OTP once the countdown ends.")
)

// Flow is the forgot-password wizard for one page view. It is a value type:
// every transition works on a copy, so callers store the result explicitly.
type Flow struct {
	step     Step
	email    string
	otp      string
	cooldown time.Duration
	resendAt time.Time

	sentMessage     string
	verifiedMessage string
	resetMessage    string
}

// NewFlow returns a wizard at StepEmail with empty state.
func NewFlow(cooldown time.Duration) Flow {
	return Flow{step: StepEmail, cooldown: cooldown}
}

func (f Flow) Step() Step                { return f.step }
func (f Flow) Email() string             { return f.email }
func (f Flow) OTP() string               { return f.otp }
func (f Flow) SentMessage() string       { return f.sentMessage }
func (f Flow) VerifiedMessage() string   { return f.verifiedMessage }
func (f Flow) ResetMessage() string      { return f.resetMessage }
func (f Flow) Cooldown() time.Duration   { return f.cooldown }
func (f Flow) ResendDeadline() time.Time { return f.resendAt }

// Title is the heading shown above the current step.
func (f Flow) Title() string {
	switch f.step {
	case StepOTP:
		return "OTP Verification"
	case StepReset:
		return "Reset Password"
	case StepDone:
		return "Password Reset"
	default:
		return "Forgot Password"
	}
}

// SendCode validates the email and simulates mailing a one-time code.
func (f *Flow) SendCode(email string, now time.Time) error {
	if err := f.expect(StepEmail); err != nil {
		return err
	}

	safe := strings.TrimSpace(email)
	f.email = safe
	if safe == "" {
		return ErrEmailRequired
	}
	if utf8.RuneCountInString(safe) > MaxEmailLength || !emailPattern.MatchString(safe) {
		return ErrEmailInvalid
	}

	f.simulateSend(now)
	f.step = StepOTP
	return nil
}

// VerifyCode accepts any OTPLength-digit code; whitespace is ignored.
func (f *Flow) VerifyCode(code string, now time.Time) error {
	if err := f.expect(StepOTP); err != nil {
		return err
	}

	safe := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, code)
	if !otpPattern.MatchString(safe) {
		return ErrOTPInvalid
	}

	f.otp = safe
	f.verifiedMessage = verifiedMessage
	f.step = StepReset
	return nil
}

// ResendCode simulates another send once the cooldown has elapsed.
func (f *Flow) ResendCode(now time.Time) error {
	if err := f.expect(StepOTP); err != nil {
		return err
	}
	if !f.CanResend(now) {
		return ErrResendTooSoon
	}

	f.simulateSend(now)
	return nil
}

// ResetPassword checks the new password pair. Passwords are never retained.
func (f *Flow) ResetPassword(password, confirm string) error {
	if err := f.expect(StepReset); err != nil {
		return err
	}

	if password == "" || confirm == "" {
		return ErrPasswordsMissing
	}
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	f.resetMessage = resetMessage
	f.step = StepDone
	return nil
}

// StartOver returns the wizard to its initial empty state.
func (f *Flow) StartOver() {
	*f = NewFlow(f.cooldown)
}

// BackToLogin resets the wizard and hands control back to the caller.
func (f *Flow) BackToLogin(onBack func()) {
	f.StartOver()
	if onBack != nil {
		onBack()
	}
}

// ResendRemaining is the cooldown left at now, never negative.
func (f Flow) ResendRemaining(now time.Time) time.Duration {
	if f.resendAt.IsZero() {
		return 0
	}
	left := f.resendAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return left
}

func (f Flow) CanResend(now time.Time) bool {
	return f.ResendRemaining(now) == 0
}

// Countdown renders the remaining cooldown as MM:SS, rounding partial seconds
// up so the display reaches 00:00 exactly when resend unlocks.
func (f Flow) Countdown(now time.Time) string {
	return FormatCountdown(f.ResendRemaining(now))
}

func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (f *Flow) simulateSend(now time.Time) {
	f.sentMessage = sentMessage
	f.resendAt = now.Add(f.cooldown)
}

func (f Flow) expect(step Step) error {
	if f.step != step {
		return fmt.Errorf("%w: expected %s, wizard is at %s", models.ErrWrongStep, step, f.step)
	}
	return nil
}
