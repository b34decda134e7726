package tui

import "github.com/chetanneosoft/User-Authentication-App/internal/service"

// Route names a top-level screen.
type Route int

const (
	RouteLoading Route = iota
	RouteHome
	RouteSignup
	RouteLogin
)

func (r Route) String() string {
	switch r {
	case RouteLoading:
		return "loading"
	case RouteHome:
		return "home"
	case RouteSignup:
		return "signup"
	case RouteLogin:
		return "login"
	default:
		return "unknown"
	}
}

// SelectRoute picks the screen for a session state. The first screen after
// start-up and every later decision come from this one function.
func SelectRoute(s service.SessionState) Route {
	switch {
	case s.IsLoading:
		return RouteLoading
	case s.User != nil:
		return RouteHome
	case s.IsFirstTime:
		return RouteSignup
	default:
		return RouteLogin
	}
}
