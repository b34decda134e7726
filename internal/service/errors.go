package service

import (
	"errors"

	"github.com/chetanneosoft/User-Authentication-App/internal/app"
)

var (
	// ErrInvalidCredentials is returned by Login. It does not reveal whether
	// the email or the password was wrong.
	ErrInvalidCredentials = errors.New(app.MsgInvalidCredentials)
	// ErrDuplicateEmail is returned by Signup for an already registered email.
	ErrDuplicateEmail = errors.New(app.MsgDuplicateEmail)
)
