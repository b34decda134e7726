package models

// LoginForm carries the raw values typed into the login screen.
type LoginForm struct {
	Email    string
	Password string
}

// SignupForm carries the raw values typed into the sign up screen.
type SignupForm struct {
	Name     string
	Email    string
	Password string
}
