package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
	"github.com/chetanneosoft/User-Authentication-App/internal/validators"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

// RootModel is a TUI router:
// 1) runs session initialisation on start
// 2) picks the page from every session state with SelectRoute
// 3) handles global ctrl+c quit and the build info window
// 4) handles NavigateTo between the logged-out pages
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	session service.SessionController
	text    *i18n.Localizer

	pages   map[Route]tea.Model
	home    *HomeModel
	spinner spinner.Model

	state    service.SessionState
	route    Route // route of the latest state, may be RouteLoading
	resolved Route // latest route other than RouteLoading
	page     Route // page on screen

	notice        string
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers the login, signup and home pages. Until the first
// resolved session state arrives the loading view is shown.
func NewRootModel(ctx context.Context, session service.SessionController, validator validators.Validator, text *i18n.Localizer, buildInfo models.AppBuildInfo) RootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	home := NewHomeModel(ctx, session, text)

	return RootModel{
		ctx:     ctx,
		session: session,
		text:    text,
		pages: map[Route]tea.Model{
			RouteLogin:  NewLoginModel(ctx, session, validator, text),
			RouteSignup: NewSignupModel(ctx, session, validator, text),
			RouteHome:   home,
		},
		home:      home,
		spinner:   s,
		state:     session.State(),
		route:     RouteLoading,
		resolved:  RouteLoading,
		page:      RouteLoading,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.spinner.Tick, r.cmdInit())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.closeInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = true
			return r, nil
		}

		// Nothing is accepted while an operation is in flight.
		if r.route == RouteLoading {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case SessionStateMsg:
		return r, r.applyState(msg.State)

	case NavigateTo:
		if r.resolved != RouteLogin && r.resolved != RouteSignup {
			return r, nil
		}
		if msg.Page != RouteLogin && msg.Page != RouteSignup {
			return r, nil
		}
		r.notice = ""
		return r, r.switchTo(msg.Page)

	case LogoutResult:
		r.notice = humanizeError(r.text, msg.Err)
		_, cmd := r.home.Update(msg)
		return r, cmd

	case LoginResult:
		return r, r.updatePage(RouteLogin, msg)

	case SignupResult:
		return r, r.updatePage(RouteSignup, msg)
	}

	return r, r.updatePage(r.page, msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.text, r.buildInfo)
	}

	loading := r.spinner.View() + " " + r.text.T(i18n.MsgLoading)

	current, ok := r.pages[r.page]
	if !ok {
		return renderPage(r.text.T(i18n.MsgAppTitle), loading, "ctrl+c")
	}

	view := current.View()
	if r.route == RouteLoading {
		view += "\n" + appStyle.Render(loading)
	}
	if r.notice != "" {
		view += "\n" + appStyle.Render(errorStyle.Render(r.notice))
	}
	return view
}

// Route returns the page on screen.
func (r RootModel) Route() Route {
	return r.page
}

// applyState switches pages only when the state-derived route changes, so a
// failed operation leaves the current page and its fields untouched.
func (r *RootModel) applyState(state service.SessionState) tea.Cmd {
	r.state = state
	r.route = SelectRoute(state)

	if r.route == RouteLoading || r.route == r.resolved {
		return nil
	}

	r.resolved = r.route
	if r.route == RouteHome && state.User != nil {
		r.home.SetUser(*state.User)
		r.notice = ""
	}
	return r.switchTo(r.route)
}

func (r *RootModel) switchTo(page Route) tea.Cmd {
	next, ok := r.pages[page]
	if !ok {
		return nil
	}
	r.showBuildInfo = false
	r.page = page
	return next.Init()
}

func (r *RootModel) updatePage(page Route, msg tea.Msg) tea.Cmd {
	current, ok := r.pages[page]
	if !ok {
		return nil
	}
	_, cmd := current.Update(msg)
	return cmd
}

func (r RootModel) cmdInit() tea.Cmd {
	ctx := r.ctx
	session := r.session
	return func() tea.Msg {
		session.Init(ctx)
		return SessionStateMsg{State: session.State()}
	}
}
