// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
	"github.com/chetanneosoft/User-Authentication-App/internal/store"
	"github.com/chetanneosoft/User-Authentication-App/internal/validators"
)

// humanizeError maps an operation error to a localized message.
func humanizeError(text *i18n.Localizer, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidCredentials):
		return text.T(i18n.MsgErrInvalidCredentials)
	case errors.Is(err, service.ErrDuplicateEmail):
		return text.T(i18n.MsgErrDuplicateEmail)
	case errors.Is(err, store.ErrStorageIO):
		return text.T(i18n.MsgErrStorage)
	case errors.Is(err, validators.ErrNameRequired):
		return text.T(i18n.MsgErrNameRequired)
	case errors.Is(err, validators.ErrPasswordRequired):
		return text.T(i18n.MsgErrPasswordRequired)
	case errors.Is(err, validators.ErrPasswordTooShort):
		return text.T(i18n.MsgErrPasswordMinLength)
	default:
		return text.T(i18n.MsgErrUnknown)
	}
}

// humanizeFieldErrors localizes validation failures per form field.
func humanizeFieldErrors(text *i18n.Localizer, err error) map[string]string {
	result := make(map[string]string)
	for field, fieldErr := range validators.FieldErrors(err) {
		result[field] = humanizeError(text, fieldErr)
	}
	return result
}
