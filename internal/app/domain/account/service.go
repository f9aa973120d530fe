package account

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/FACorreiaa/eonics-site/internal/app/models"
	"github.com/FACorreiaa/eonics-site/internal/app/observability/metrics"
	"github.com/FACorreiaa/eonics-site/internal/pkg/cache"
)

var ErrMissingFields = errors.New("missing required fields")

type LoginForm struct {
	Email    string `form:"email" label:"Email / Username" validate:"required"`
	Password string `form:"password" label:"Password" validate:"required"`
}

type SignupForm struct {
	Name     string `form:"name" label:"Name" validate:"required"`
	Email    string `form:"email" label:"Email" validate:"required"`
	Password string `form:"password" label:"Password" validate:"required"`
}

// Service marks views as signed in. There is no credential check: any
// complete form succeeds.
type Service struct {
	sessions *cache.UnifiedCache[models.Session]
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(sessions *cache.UnifiedCache[models.Session], logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return &Service{sessions: sessions, validate: v, logger: logger}
}

// Current returns the view's session; unknown views are signed out.
func (s *Service) Current(viewID string) models.Session {
	session, _ := s.sessions.Get(viewID)
	return session
}

func (s *Service) Login(ctx context.Context, viewID string, form LoginForm) (models.Session, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := s.check(form); err != nil {
		metrics.RecordForm(ctx, "login", "rejected")
		return s.Current(viewID), err
	}
	return s.signIn(ctx, viewID, "login", displayNameFromLogin(form.Email)), nil
}

func (s *Service) Signup(ctx context.Context, viewID string, form SignupForm) (models.Session, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if err := s.check(form); err != nil {
		metrics.RecordForm(ctx, "signup", "rejected")
		return s.Current(viewID), err
	}
	return s.signIn(ctx, viewID, "signup", form.Name), nil
}

func (s *Service) signIn(ctx context.Context, viewID, form, displayName string) models.Session {
	session := models.Session{Authenticated: true, DisplayName: displayName}
	s.sessions.Set(viewID, session)

	metrics.RecordForm(ctx, form, "ok")
	s.logger.Debug("View signed in",
		zap.String("view_id", viewID),
		zap.String("form", form),
	)
	return session
}

// check turns the first validation failure into a user-facing notice naming
// every missing field.
func (s *Service) check(form any) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	labels := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		labels = append(labels, fe.Field())
	}
	return models.NewValidationError(ErrMissingFields, "Missing fields",
		"Please fill in: "+strings.Join(labels, ", ")+".")
}

// displayNameFromLogin uses the part of an email before "@", or the whole
// username when there is none.
func displayNameFromLogin(login string) string {
	if at := strings.Index(login, "@"); at > 0 {
		return login[:at]
	}
	return login
}
