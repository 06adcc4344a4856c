package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-project-keeper/internal/service"
	"github.com/MKhiriev/go-project-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenAuth
	screenCreate
	screenDetail
)

type appModel struct {
	ctx       context.Context
	store     service.ProjectStore
	accounts  service.AccountService
	events    <-chan models.Event
	buildInfo models.AppBuildInfo

	currentScreen screen
	user          string

	projects   []models.Project
	idx        int
	publicOnly bool
	loading    bool

	auth   authModel
	create createModel

	confirm       *confirmModel
	showBuildInfo bool

	status string
	errMsg string
}

func newAppModel(ctx context.Context, store service.ProjectStore, accounts service.AccountService, events <-chan models.Event, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		store:         store,
		accounts:      accounts,
		events:        events,
		buildInfo:     buildInfo,
		currentScreen: screenList,
		loading:       true,
		auth:          newAuthModel(),
		create:        newCreateModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		waitForEvent(m.events),
		cmdCurrentUser(m.ctx, m.accounts),
		cmdLoadProjects(m.ctx, m.store, m.publicOnly),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m.handleEvent(msg)

	case projectsLoadedMsg:
		m.loading = false
		m.projects = msg.projects
		m.clampCursor()
		return m, nil

	case currentUserMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = msg.username
		return m, nil

	case projectCreatedMsg:
		m.currentScreen = screenList
		m.create = newCreateModel()
		m.idx = 0
		return m.setStatus("Проект сохранён (" + sourceLabel(msg.result.Source) + ")")

	case projectChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		visibility := "приватный"
		if msg.result.Project.IsPublic() {
			visibility = "публичный"
		}
		return m.setStatus("Проект теперь " + visibility)

	case projectDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if m.currentScreen == screenDetail {
			m.currentScreen = screenList
		}
		return m.setStatus("Проект удалён (" + sourceLabel(msg.source) + ")")

	case authDoneMsg:
		if msg.err != nil {
			m.auth.submitting = false
			m.auth.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = strings.TrimSpace(msg.username)
		m.auth = newAuthModel()
		m.currentScreen = screenList
		return m.setStatus("Вы вошли как " + m.user)

	case signedOutMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = ""
		return m.setStatus("Вы вышли")

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		return m.setStatus("ID скопирован: " + msg.id)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// blink and other widget ticks
	return m.updateActiveForm(msg)
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	switch m.currentScreen {
	case screenAuth:
		return m.auth.View()
	case screenCreate:
		return m.create.View()
	case screenDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m appModel) handleEvent(msg eventMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		return m, nil
	}

	switch msg.event.Type {
	case models.EventProjectsUpdated:
		// the event carries the local collection; reload through the store
		// so that the remote stays authoritative when it answers
		return m, tea.Batch(waitForEvent(m.events), cmdLoadProjects(m.ctx, m.store, m.publicOnly))
	case models.EventUserChanged:
		m.user = msg.event.Username
	}

	return m, waitForEvent(m.events)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			id := m.confirm.id
			m.confirm = nil
			return m, cmdDeleteProject(m.ctx, m.store, id)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenAuth:
		return m.handleAuthKey(msg)
	case screenCreate:
		return m.handleCreateKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleProjectKey serves the bindings shared by the list and the detail
// screen. handled is false for keys it does not own.
func (m appModel) handleProjectKey(msg tea.KeyMsg) (model appModel, cmd tea.Cmd, handled bool) {
	switch {
	case key.Matches(msg, keys.togglePublic):
		p, ok := m.selected()
		if !ok {
			return m, nil, true
		}
		if !m.store.IsOwner(p, m.user) {
			m.errMsg = "Менять видимость может только автор"
			return m, nil, true
		}
		m.errMsg = ""
		return m, cmdTogglePublic(m.ctx, m.store, p.ID, !p.IsPublic()), true

	case key.Matches(msg, keys.delete):
		p, ok := m.selected()
		if !ok {
			return m, nil, true
		}
		if !m.store.IsOwner(p, m.user) {
			m.errMsg = "Удалить проект может только автор"
			return m, nil, true
		}
		m.errMsg = ""
		m.confirm = &confirmModel{id: p.ID, title: p.Title}
		return m, nil, true

	case key.Matches(msg, keys.copy):
		p, ok := m.selected()
		if !ok {
			return m, nil, true
		}
		return m, cmdCopyID(p.ID), true
	}

	return m, nil, false
}

func (m appModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.errMsg = ""
	return m, tea.Batch(cmdLoadProjects(m.ctx, m.store, m.publicOnly), cmdClearStatus())
}

func (m appModel) selected() (models.Project, bool) {
	if m.idx < 0 || m.idx >= len(m.projects) {
		return models.Project{}, false
	}
	return m.projects[m.idx], true
}

func (m *appModel) clampCursor() {
	if m.idx >= len(m.projects) {
		m.idx = len(m.projects) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m appModel) updateActiveForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScreen {
	case screenAuth:
		m.auth, cmd = m.auth.updateInputs(msg)
	case screenCreate:
		m.create, cmd = m.create.updateInputs(msg)
	}
	return m, cmd
}

func sourceLabel(s models.Source) string {
	if s == models.SourceRemote {
		return "удалённо"
	}
	return "локально"
}
