package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-project-keeper/internal/service"
	"github.com/MKhiriev/go-project-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// copyToClipboard is swapped in tests; there is no clipboard on CI runners.
var copyToClipboard = clipboard.WriteAll

func waitForEvent(events <-chan models.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		return eventMsg{event: ev, ok: ok}
	}
}

func cmdLoadProjects(ctx context.Context, store service.ProjectStore, publicOnly bool) tea.Cmd {
	return func() tea.Msg {
		return projectsLoadedMsg{projects: store.ListProjects(ctx, models.ListFilter{PublicOnly: publicOnly})}
	}
}

func cmdCurrentUser(ctx context.Context, accounts service.AccountService) tea.Cmd {
	return func() tea.Msg {
		username, err := accounts.CurrentUser(ctx)
		return currentUserMsg{username: username, err: err}
	}
}

func cmdCreateProject(ctx context.Context, store service.ProjectStore, payload models.Project) tea.Cmd {
	return func() tea.Msg {
		return projectCreatedMsg{result: store.CreateProject(ctx, payload)}
	}
}

func cmdTogglePublic(ctx context.Context, store service.ProjectStore, id string, makePublic bool) tea.Cmd {
	return func() tea.Msg {
		result, err := store.TogglePublic(ctx, id, makePublic)
		return projectChangedMsg{result: result, err: err}
	}
}

func cmdDeleteProject(ctx context.Context, store service.ProjectStore, id string) tea.Cmd {
	return func() tea.Msg {
		source, err := store.DeleteProject(ctx, id)
		return projectDeletedMsg{id: id, source: source, err: err}
	}
}

func cmdAuth(ctx context.Context, accounts service.AccountService, username, password string, signUp bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if signUp {
			err = accounts.CreateUser(ctx, username, password)
		} else {
			err = accounts.SignIn(ctx, username, password)
		}
		return authDoneMsg{username: username, signUp: signUp, err: err}
	}
}

func cmdSignOut(ctx context.Context, accounts service.AccountService) tea.Cmd {
	return func() tea.Msg {
		return signedOutMsg{err: accounts.SignOut(ctx)}
	}
}

func cmdCopyID(id string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{id: id, err: copyToClipboard(id)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
