// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// client services and the terminal UI.
//
// All Msg* constants are the canonical English texts of outcomes that reach
// the user. The UI renders localized variants; these texts are what the
// corresponding sentinel errors carry.
package app

const (
	// MsgInvalidCredentials is returned when no registered account matches the
	// email and password pair. It deliberately does not say which field was
	// wrong.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgDuplicateEmail is returned when signing up with an email that already
	// belongs to an account.
	MsgDuplicateEmail = "User with this email already exists"

	// MsgNameRequired is shown when the sign up form has a blank name.
	MsgNameRequired = "Name is required"

	// MsgPasswordRequired is shown when a form has a blank password.
	MsgPasswordRequired = "Password is required"

	// MsgPasswordMinLength is shown when the sign up password is too short.
	MsgPasswordMinLength = "Password must be at least 8 characters"
)
