package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chetanneosoft/User-Authentication-App/internal/client"
	"github.com/chetanneosoft/User-Authentication-App/internal/config"
	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
	"github.com/chetanneosoft/User-Authentication-App/internal/store"
	"github.com/chetanneosoft/User-Authentication-App/internal/tui"
	"github.com/chetanneosoft/User-Authentication-App/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}
	log := logger.NewClientLogger("auth-client", cfg.Log.Path, level)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Str("storage", cfg.Storage.Backend).
		Msg("starting client")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create client storages")
		return fmt.Errorf("create client storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close client storages")
		}
	}()

	services := service.NewClientServices(storages, cfg.Workers.SessionClearRetryInterval, log)

	text, err := i18n.NewLocalizer(cfg.App.Language)
	if err != nil {
		return fmt.Errorf("error loading translations: %w", err)
	}

	ui, err := tui.New(services, text, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}
