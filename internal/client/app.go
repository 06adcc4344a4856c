package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-keeper/internal/adapter"
	"github.com/MKhiriev/go-project-keeper/internal/config"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/service"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/internal/tui"
	"github.com/MKhiriev/go-project-keeper/internal/workers"
	"github.com/MKhiriev/go-project-keeper/models"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	// newUI builds the front end once the services are wired.
	newUI func(*service.ClientServices) UI

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		newUI: func(svcs *service.ClientServices) UI {
			return tui.New(svcs, buildInfo, logger)
		},
		logger: logger,
	}
}

// Run executes one client session:
//  1. open the local storages and the remote collection;
//  2. normalize the local collection;
//  3. start reconciliation unless it is disabled or no remote is configured;
//  4. run the UI;
//  5. wait for reconciliation to finish, bounded by its own timeout.
func (a *App) Run(ctx context.Context) error {
	storages, err := store.NewClientStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if cErr := storages.Close(); cErr != nil {
			a.logger.Err(cErr).Str("func", "App.Run").Msg("error closing local storage")
		}
	}()

	remote, remoteCloser, err := adapter.NewRemoteCollection(a.cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create remote collection: %w", err)
	}
	defer func() {
		if cErr := remoteCloser.Close(); cErr != nil {
			a.logger.Err(cErr).Str("func", "App.Run").Msg("error closing remote collection")
		}
	}()

	svcs := service.NewClientServices(storages, remote, a.cfg, a.logger)

	if _, err = svcs.Normalizer.Normalize(a.logger.WithContext(ctx)); err != nil {
		a.logger.Warn().Err(err).Msg("local collection could not be normalized")
	}

	jobs := workers.NewWorkers()
	if !a.cfg.Sync.Disabled && remote != nil {
		jobs = workers.NewWorkers(workers.NewReconcileWorker(svcs.ReconcileService, a.cfg.Sync.Timeout, a.logger))
	}
	jobs.Start(ctx)

	uiErr := a.newUI(svcs).Run(ctx)

	a.logger.Debug().Msg("waiting for background workers")
	jobs.Wait()

	if uiErr != nil {
		return fmt.Errorf("run ui: %w", uiErr)
	}
	return nil
}
