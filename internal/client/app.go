package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
	"github.com/chetanneosoft/User-Authentication-App/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{services: services, ui: ui, logger: log}, nil
}

// Run blocks until the UI exits. Quitting with ctrl+c is a normal exit.
func (a *App) Run(ctx context.Context) error {
	defer a.services.Close()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}
