package recovery

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func flowAtOTP(t *testing.T) Flow {
	t.Helper()
	f := NewFlow(DefaultResendCooldown)
	require.NoError(t, f.SendCode("student@college.edu", t0))
	return f
}

func flowAtReset(t *testing.T) Flow {
	t.Helper()
	f := flowAtOTP(t)
	require.NoError(t, f.VerifyCode("123456", t0))
	return f
}

func TestFlow_SendCode(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "empty", email: "", wantErr: ErrEmailRequired},
		{name: "whitespace only", email: "   ", wantErr: ErrEmailRequired},
		{name: "missing at", email: "student.college.edu", wantErr: ErrEmailInvalid},
		{name: "missing dot after at", email: "student@college", wantErr: ErrEmailInvalid},
		{name: "inner whitespace", email: "stu dent@college.edu", wantErr: ErrEmailInvalid},
		{name: "inner no-break space", email: "a\u00a0b@college.edu", wantErr: ErrEmailInvalid},
		{name: "ideographic space in domain", email: "student@college\u3000x.edu", wantErr: ErrEmailInvalid},
		{name: "line separator", email: "student@coll\u2028ege.edu", wantErr: ErrEmailInvalid},
		{name: "byte order mark", email: "stu\ufeffdent@college.edu", wantErr: ErrEmailInvalid},
		{name: "vertical tab", email: "stu\vdent@college.edu", wantErr: ErrEmailInvalid},
		{name: "too long", email: strings.Repeat("a", 250) + "@x.com", wantErr: ErrEmailInvalid},
		{name: "valid", email: "student@college.edu"},
		{name: "valid with surrounding spaces", email: "  student@college.edu  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlow(DefaultResendCooldown)
			err := f.SendCode(tt.email, t0)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, models.ErrValidation)
				assert.Equal(t, StepEmail, f.Step())
				assert.Empty(t, f.SentMessage())
				assert.True(t, f.CanResend(t0))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, StepOTP, f.Step())
			assert.Equal(t, "student@college.edu", f.Email())
			assert.Equal(t, "An OTP has been sent to your registered email address.", f.SentMessage())
			assert.Equal(t, t0.Add(DefaultResendCooldown), f.ResendDeadline())
			assert.Equal(t, "00:30", f.Countdown(t0))
		})
	}
}

func TestFlow_VerifyCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{name: "six digits", code: "123456", ok: true},
		{name: "digits with spaces", code: " 12 34 56 ", ok: true},
		{name: "five digits", code: "12345"},
		{name: "seven digits", code: "1234567"},
		{name: "letters", code: "12a456"},
		{name: "empty", code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := flowAtOTP(t)
			err := f.VerifyCode(tt.code, t0)

			if !tt.ok {
				assert.ErrorIs(t, err, ErrOTPInvalid)
				assert.Equal(t, StepOTP, f.Step())
				assert.Empty(t, f.VerifiedMessage())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StepReset, f.Step())
			assert.Equal(t, "123456", f.OTP())
			assert.Equal(t, "OTP verified successfully.", f.VerifiedMessage())
		})
	}
}

func TestFlow_ResendCode(t *testing.T) {
	t.Run("rejected during cooldown without restarting it", func(t *testing.T) {
		f := flowAtOTP(t)
		deadline := f.ResendDeadline()

		err := f.ResendCode(t0.Add(10 * time.Second))
		assert.ErrorIs(t, err, ErrResendTooSoon)
		assert.ErrorIs(t, err, models.ErrCoolingDown)
		assert.Equal(t, deadline, f.ResendDeadline())
		assert.Equal(t, "00:20", f.Countdown(t0.Add(10*time.Second)))
	})

	t.Run("allowed once the cooldown elapsed and restarts it", func(t *testing.T) {
		f := flowAtOTP(t)
		later := t0.Add(DefaultResendCooldown)

		require.NoError(t, f.ResendCode(later))
		assert.Equal(t, later.Add(DefaultResendCooldown), f.ResendDeadline())
		assert.Equal(t, StepOTP, f.Step())
		assert.Equal(t, "00:30", f.Countdown(later))
	})
}

func TestFlow_ResetPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  error
	}{
		{name: "both empty", wantErr: ErrPasswordsMissing},
		{name: "confirm empty", password: "password1", wantErr: ErrPasswordsMissing},
		{name: "too short", password: "short", confirm: "short", wantErr: ErrPasswordTooShort},
		{name: "short and mismatched reports weakness first", password: "short", confirm: "other", wantErr: ErrPasswordTooShort},
		{name: "mismatch", password: "password1", confirm: "password2", wantErr: ErrPasswordMismatch},
		{name: "exactly eight", password: "abcdefgh", confirm: "abcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := flowAtReset(t)
			err := f.ResetPassword(tt.password, tt.confirm)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StepReset, f.Step())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StepDone, f.Step())
			assert.Equal(t, "Your password has been successfully reset.", f.ResetMessage())
		})
	}
}

func TestFlow_StaleSteps(t *testing.T) {
	f := flowAtReset(t)
	before := f

	assert.ErrorIs(t, f.SendCode("other@college.edu", t0), models.ErrWrongStep)
	assert.ErrorIs(t, f.VerifyCode("654321", t0), models.ErrWrongStep)
	assert.ErrorIs(t, f.ResendCode(t0.Add(time.Hour)), models.ErrWrongStep)
	assert.Equal(t, before, f)

	fresh := NewFlow(DefaultResendCooldown)
	err := fresh.ResetPassword("password1", "password1")
	assert.ErrorIs(t, err, models.ErrWrongStep)
	assert.False(t, errors.Is(err, models.ErrValidation))
	assert.Equal(t, StepEmail, fresh.Step())
}

func TestFlow_StartOverAndBackToLogin(t *testing.T) {
	t.Run("start over clears everything", func(t *testing.T) {
		f := flowAtReset(t)
		require.NoError(t, f.ResetPassword("password1", "password1"))

		f.StartOver()
		assert.Equal(t, NewFlow(DefaultResendCooldown), f)
		assert.True(t, f.CanResend(t0))
		assert.Equal(t, "00:00", f.Countdown(t0))
	})

	t.Run("back to login resets and calls back", func(t *testing.T) {
		f := flowAtOTP(t)
		called := false

		f.BackToLogin(func() { called = true })
		assert.True(t, called)
		assert.Equal(t, StepEmail, f.Step())
		assert.Empty(t, f.Email())
		assert.Empty(t, f.SentMessage())
	})

	t.Run("back to login tolerates a nil callback", func(t *testing.T) {
		f := flowAtOTP(t)
		assert.NotPanics(t, func() { f.BackToLogin(nil) })
		assert.Equal(t, StepEmail, f.Step())
	})
}

func TestFlow_Title(t *testing.T) {
	f := NewFlow(DefaultResendCooldown)
	assert.Equal(t, "Forgot Password", f.Title())
	f = flowAtOTP(t)
	assert.Equal(t, "OTP Verification", f.Title())
	f = flowAtReset(t)
	assert.Equal(t, "Reset Password", f.Title())
	require.NoError(t, f.ResetPassword("password1", "password1"))
	assert.Equal(t, "Password Reset", f.Title())
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "00:00"},
		{in: -5 * time.Second, want: "00:00"},
		{in: 30 * time.Second, want: "00:30"},
		{in: 29*time.Second + 100*time.Millisecond, want: "00:30"},
		{in: 500 * time.Millisecond, want: "00:01"},
		{in: 90 * time.Second, want: "01:30"},
		{in: 61 * time.Minute, want: "61:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCountdown(tt.in), "FormatCountdown(%s)", tt.in)
	}
}

func TestFlow_ResendRemainingNeverNegative(t *testing.T) {
	f := flowAtOTP(t)
	assert.Equal(t, time.Duration(0), f.ResendRemaining(t0.Add(time.Hour)))
	assert.Equal(t, DefaultResendCooldown, f.ResendRemaining(t0))
	assert.Equal(t, "00:00", f.Countdown(t0.Add(time.Hour)))
}
