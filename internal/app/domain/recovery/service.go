package recovery

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/models"
	"github.com/FACorreiaa/eonics-site/internal/app/observability/metrics"
	"github.com/FACorreiaa/eonics-site/internal/pkg/cache"
)

const formName = "recovery"

// Notices shown after successful transitions.
var (
	NoticeSent     = models.Info("OTP sent", "Demo only (no email service).")
	NoticeResent   = models.Info("Resent OTP", "Demo resend (no email sent).")
	NoticeVerified = models.Info("OTP verified", "Proceed to reset your password.")
	NoticeReset    = models.Info("Password reset", "Demo only (no backend).")
)

// Service keeps one wizard per view and applies transitions to it.
type Service struct {
	flows    *cache.UnifiedCache[Flow]
	cooldown time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

type ServiceOption func(*Service)

// WithClock overrides the time source used for cooldowns.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func NewService(flows *cache.UnifiedCache[Flow], cooldown time.Duration, logger *zap.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		flows:    flows,
		cooldown: cooldown,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now is the service clock; views use it to render the countdown.
func (s *Service) Now() time.Time {
	return s.now()
}

// Current returns the view's wizard without changing it.
func (s *Service) Current(viewID string) Flow {
	if f, ok := s.flows.Get(viewID); ok {
		return f
	}
	return NewFlow(s.cooldown)
}

func (s *Service) SendCode(ctx context.Context, viewID, email string) (Flow, error) {
	return s.apply(ctx, viewID, "send", func(f *Flow) error {
		return f.SendCode(email, s.now())
	})
}

func (s *Service) VerifyCode(ctx context.Context, viewID, code string) (Flow, error) {
	return s.apply(ctx, viewID, "verify", func(f *Flow) error {
		return f.VerifyCode(code, s.now())
	})
}

func (s *Service) ResendCode(ctx context.Context, viewID string) (Flow, error) {
	return s.apply(ctx, viewID, "resend", func(f *Flow) error {
		return f.ResendCode(s.now())
	})
}

func (s *Service) ResetPassword(ctx context.Context, viewID, password, confirm string) (Flow, error) {
	return s.apply(ctx, viewID, "reset", func(f *Flow) error {
		return f.ResetPassword(password, confirm)
	})
}

func (s *Service) StartOver(ctx context.Context, viewID string) Flow {
	f, _ := s.apply(ctx, viewID, "start_over", func(f *Flow) error {
		f.StartOver()
		return nil
	})
	return f
}

// BackToLogin resets the wizard and runs onBack, which lets the account
// dialog switch back to its login tab.
func (s *Service) BackToLogin(ctx context.Context, viewID string, onBack func()) Flow {
	f, _ := s.apply(ctx, viewID, "back_to_login", func(f *Flow) error {
		f.BackToLogin(onBack)
		return nil
	})
	return f
}

func (s *Service) apply(ctx context.Context, viewID, action string, fn func(*Flow) error) (Flow, error) {
	var from Step
	next, err := s.flows.Update(viewID,
		func() Flow { return NewFlow(s.cooldown) },
		func(f Flow) (Flow, error) {
			from = f.Step()
			err := fn(&f)
			return f, err
		},
	)

	switch {
	case err == nil:
		metrics.RecordForm(ctx, formName, action+"_ok")
	case errors.Is(err, models.ErrValidation):
		metrics.RecordForm(ctx, formName, action+"_rejected")
	default:
		metrics.RecordForm(ctx, formName, action+"_failed")
	}

	if from != next.Step() {
		metrics.RecordTransition(ctx, string(from), string(next.Step()))
	}

	s.logger.Debug("Recovery action",
		zap.String("view_id", viewID),
		zap.String("action", action),
		zap.String("from", string(from)),
		zap.String("to", string(next.Step())),
		zap.Error(err),
	)
	return next, err
}
