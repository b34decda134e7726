package models

import "strings"

// User is a registered account as it is persisted in the users list.
//
// The password is kept in plaintext: the on-device layout is shared with
// earlier releases of the app and carries no hashing scheme.
type User struct {
	// Name is the display name entered at sign up.
	Name string `json:"name"`

	// Email identifies the account. It is stored lower-cased and compared
	// case-insensitively.
	Email string `json:"email"`

	// Password is compared byte for byte, case-sensitively.
	Password string `json:"password"`
}

// Session returns the public profile of the account with the password
// stripped and the email lower-cased.
func (u User) Session() SessionUser {
	return SessionUser{
		Name:  u.Name,
		Email: strings.ToLower(u.Email),
	}
}

// SessionUser is the profile of the currently logged in user.
type SessionUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
