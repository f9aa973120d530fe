package models

import "errors"

// Domain specific errors shared by the demo forms.
var (
	ErrValidation     = errors.New("validation failed")
	ErrWrongStep      = errors.New("action not allowed in the current step")
	ErrCoolingDown    = errors.New("action is cooling down")
	ErrInvalidCatalog = errors.New("invalid content catalog")
)

// ValidationError is a user-facing form failure. It unwraps to both its
// specific sentinel and ErrValidation.
type ValidationError struct {
	Notice Notice
	Err    error
}

func NewValidationError(sentinel error, title, description string) *ValidationError {
	return &ValidationError{
		Notice: Notice{
			Title:       title,
			Description: description,
			Variant:     NoticeDestructive,
		},
		Err: sentinel,
	}
}

func (e *ValidationError) Error() string {
	if e.Notice.Description == "" {
		return e.Notice.Title
	}
	return e.Notice.Title + ": " + e.Notice.Description
}

func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{e.Err, ErrValidation}
}

// NoticeFromError extracts the notice a form failure should show. Errors that
// are not validation errors get a generic destructive notice.
func NoticeFromError(err error) Notice {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Notice
	}
	return Notice{
		Title:       "Something went wrong",
		Description: "Please try again.",
		Variant:     NoticeDestructive,
	}
}
