package validators

import (
	"errors"

	"github.com/chetanneosoft/User-Authentication-App/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired     = errors.New(app.MsgNameRequired)
	ErrPasswordRequired = errors.New(app.MsgPasswordRequired)
	ErrPasswordTooShort = errors.New(app.MsgPasswordMinLength)
)

// FieldError binds a validation failure to the form field it concerns.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors splits an error returned by [FormValidator.Validate] into the
// first failure of every field.
func FieldErrors(err error) map[string]error {
	result := make(map[string]error)
	collectFieldErrors(err, result)
	return result
}

func collectFieldErrors(err error, into map[string]error) {
	if err == nil {
		return
	}

	var fe *FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectFieldErrors(e, into)
		}
		return
	}

	if errors.As(err, &fe) {
		if _, seen := into[fe.Field]; !seen {
			into[fe.Field] = fe.Err
		}
	}
}
