package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/service"
	"github.com/MKhiriev/go-project-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// eventBuffer is the subscription buffer of the UI. Events beyond it are
// dropped by the notifier; the list reloads on the next one anyway.
const eventBuffer = 16

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	events, cancel := t.services.ProjectStore.Subscribe(eventBuffer)
	defer cancel()

	model := newAppModel(ctx, t.services.ProjectStore, t.services.AccountService, events, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("tui stopped by context")
		return nil
	}
	return err
}
