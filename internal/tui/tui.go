package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
	"github.com/chetanneosoft/User-Authentication-App/internal/validators"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

// ErrUserQuit is returned by Run when the user closed the program with ctrl+c.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	session   service.SessionController
	validator validators.Validator
	text      *i18n.Localizer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, text *i18n.Localizer, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.Session == nil {
		return nil, errors.New("tui: session controller is required")
	}
	if text == nil {
		return nil, errors.New("tui: localizer is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		session:        services.Session,
		validator:      validators.NewFormValidator(),
		text:           text,
		buildInfo:      buildInfo,
		logger:         log,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run shows the program until the user quits or ctx is cancelled. Session
// state changes are forwarded into the program as [SessionStateMsg].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.session, t.validator, t.text, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	p := tea.NewProgram(root, opts...)

	unsubscribe := t.session.Subscribe(func(state service.SessionState) {
		p.Send(SessionStateMsg{State: state})
	})
	defer unsubscribe()

	t.logger.Info().Str("language", t.text.Tag().String()).Msg("starting terminal UI")

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("terminal UI stopped by context")
			return nil
		}
		t.logger.Err(err).Msg("terminal UI failed")
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
