package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-project-keeper/internal/mock"
	"github.com/MKhiriev/go-project-keeper/internal/service"
	"github.com/MKhiriev/go-project-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	store    *mock.MockProjectStore
	accounts *mock.MockAccountService
	events   chan models.Event
	model    appModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		store:    mock.NewMockProjectStore(ctrl),
		accounts: mock.NewMockAccountService(ctrl),
		events:   make(chan models.Event, 4),
	}
	f.model = newAppModel(context.Background(), f.store, f.accounts, f.events, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"))
	f.model.loading = false
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(appModel)
	return cmd
}

func (f *fixture) key(s string) tea.Cmd {
	switch s {
	case "enter":
		return f.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return f.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		return f.send(tea.KeyMsg{Type: tea.KeyTab})
	case "ctrl+s":
		return f.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	case "ctrl+r":
		return f.send(tea.KeyMsg{Type: tea.KeyCtrlR})
	case "ctrl+p":
		return f.send(tea.KeyMsg{Type: tea.KeyCtrlP})
	case "ctrl+c":
		return f.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	}
	return f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (f *fixture) typeText(s string) {
	for _, r := range s {
		f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// run executes cmd and returns the first message of type T it yields. Batch
// members are run concurrently with a short timeout so that blocking
// commands (event waits, status ticks) are skipped.
func run[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	require.NotNil(t, cmd)

	var zero T
	msg := cmd()
	switch m := msg.(type) {
	case T:
		return m
	case tea.BatchMsg:
		for _, c := range m {
			if c == nil {
				continue
			}
			if got, ok := tryRun[T](c); ok {
				return got
			}
		}
	}
	t.Fatalf("no %T produced by command, got %T", zero, msg)
	return zero
}

func tryRun[T tea.Msg](cmd tea.Cmd) (T, bool) {
	var zero T
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		got, ok := msg.(T)
		return got, ok
	case <-time.After(200 * time.Millisecond):
		return zero, false
	}
}

var sample = []models.Project{
	{ID: "p-2", Title: "Second", Author: "alice", Public: models.Bool(true)},
	{ID: "local-1", Title: "First", Author: "bob", Public: models.Bool(false)},
}

// ── loading ──

func TestInit_LoadsUserAndProjects(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().ListProjects(gomock.Any(), models.ListFilter{}).Return(sample)
	f.accounts.EXPECT().CurrentUser(gomock.Any()).Return("alice", nil)

	cmd := f.model.Init()
	f.events <- models.UserChanged("alice")

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		f.send(c())
	}

	assert.Equal(t, "alice", f.model.user)
	assert.Equal(t, sample, f.model.projects)
	assert.Contains(t, f.model.View(), "Second")
	assert.Contains(t, f.model.View(), "(локально)")
}

func TestProjectsUpdatedEvent_ReloadsThroughStore(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().ListProjects(gomock.Any(), models.ListFilter{}).Return(sample)

	cmd := f.send(eventMsg{event: models.ProjectsUpdated(nil), ok: true})

	loaded := run[projectsLoadedMsg](t, cmd)
	f.send(loaded)
	assert.Len(t, f.model.projects, 2)
}

func TestClosedEventStream_StopsListening(t *testing.T) {
	f := newFixture(t)

	cmd := f.send(eventMsg{ok: false})

	assert.Nil(t, cmd)
}

func TestFilterKey_TogglesPublicOnly(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().ListProjects(gomock.Any(), models.ListFilter{PublicOnly: true}).Return(sample[:1])

	cmd := f.key("f")
	f.send(cmd())

	assert.True(t, f.model.publicOnly)
	assert.Len(t, f.model.projects, 1)
	assert.Contains(t, f.model.View(), "только публичные")
}

// ── navigation ──

func TestCursorMovesWithinBounds(t *testing.T) {
	f := newFixture(t)
	f.send(projectsLoadedMsg{projects: sample})

	f.key("k")
	assert.Equal(t, 0, f.model.idx)
	f.key("j")
	f.key("j")
	assert.Equal(t, 1, f.model.idx)

	f.key("enter")
	assert.Equal(t, screenDetail, f.model.currentScreen)
	assert.Contains(t, f.model.View(), "local-1")

	f.key("esc")
	assert.Equal(t, screenList, f.model.currentScreen)
}

func TestCursorClampedAfterShrink(t *testing.T) {
	f := newFixture(t)
	f.send(projectsLoadedMsg{projects: sample})
	f.model.idx = 1

	f.send(projectsLoadedMsg{projects: sample[:1]})

	assert.Equal(t, 0, f.model.idx)
}

// ── toggle public / delete ──

func TestTogglePublic_Owner(t *testing.T) {
	f := newFixture(t)
	f.model.user = "alice"
	f.send(projectsLoadedMsg{projects: sample})

	f.store.EXPECT().IsOwner(sample[0], "alice").Return(true)
	f.store.EXPECT().TogglePublic(gomock.Any(), "p-2", false).
		Return(models.ProjectResult{Project: models.Project{ID: "p-2", Public: models.Bool(false)}, Source: models.SourceRemote}, nil)

	changed := run[projectChangedMsg](t, f.key("p"))
	require.NoError(t, changed.err)

	f.store.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(sample).AnyTimes()
	f.send(changed)
	assert.Equal(t, "Проект теперь приватный", f.model.status)
}

func TestTogglePublic_NotOwner(t *testing.T) {
	f := newFixture(t)
	f.model.user = "mallory"
	f.send(projectsLoadedMsg{projects: sample})
	f.store.EXPECT().IsOwner(sample[0], "mallory").Return(false)

	cmd := f.key("p")

	assert.Nil(t, cmd)
	assert.NotEmpty(t, f.model.errMsg)
}

func TestDelete_ConfirmAndCancel(t *testing.T) {
	f := newFixture(t)
	f.model.user = "alice"
	f.send(projectsLoadedMsg{projects: sample})
	f.store.EXPECT().IsOwner(sample[0], "alice").Return(true).Times(2)

	f.key("d")
	require.NotNil(t, f.model.confirm)
	assert.Contains(t, f.model.View(), "Second")

	f.key("n")
	assert.Nil(t, f.model.confirm)

	f.key("d")
	f.store.EXPECT().DeleteProject(gomock.Any(), "p-2").Return(models.SourceLocal, nil)
	deleted := run[projectDeletedMsg](t, f.key("y"))

	assert.Equal(t, models.SourceLocal, deleted.source)
	f.store.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(sample[1:]).AnyTimes()
	f.send(deleted)
	assert.Equal(t, "Проект удалён (локально)", f.model.status)
}

func TestDelete_ErrorShown(t *testing.T) {
	f := newFixture(t)

	f.send(projectDeletedMsg{id: "gone", err: service.ErrProjectNotFound})

	assert.Equal(t, "Проект не найден", f.model.errMsg)
}

// ── copy id ──

func TestCopyID(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	f := newFixture(t)
	f.send(projectsLoadedMsg{projects: sample})

	msg := run[copiedMsg](t, f.key("c"))

	assert.Equal(t, "p-2", copied)
	assert.NoError(t, msg.err)
}

// ── create ──

func TestCreateFlow(t *testing.T) {
	f := newFixture(t)
	f.model.user = "alice"

	f.key("n")
	require.Equal(t, screenCreate, f.model.currentScreen)
	assert.Equal(t, "alice", f.model.create.inputs[fieldAuthor].Value())

	f.typeText("Demo")
	f.key("tab")
	f.key("tab")
	f.key("tab")
	f.typeText("Hello world")
	f.key("ctrl+p")

	want := models.Project{Title: "Demo", Author: "alice", Desc: "Hello world", Public: models.Bool(false)}
	f.store.EXPECT().CreateProject(gomock.Any(), want).
		Return(models.ProjectResult{Project: want, Source: models.SourceRemote})

	created := run[projectCreatedMsg](t, f.key("ctrl+s"))
	f.store.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.send(created)

	assert.Equal(t, screenList, f.model.currentScreen)
	assert.Equal(t, "Проект сохранён (удалённо)", f.model.status)
}

func TestCreate_TitleRequired(t *testing.T) {
	f := newFixture(t)
	f.key("n")

	cmd := f.key("ctrl+s")

	assert.Nil(t, cmd)
	assert.NotEmpty(t, f.model.create.errMsg)
}

// ── auth ──

func TestSignInFlow(t *testing.T) {
	f := newFixture(t)

	f.key("a")
	require.Equal(t, screenAuth, f.model.currentScreen)
	f.typeText("alice")
	f.key("tab")
	f.typeText("secret")

	f.accounts.EXPECT().SignIn(gomock.Any(), "alice", "secret").Return(nil)
	done := run[authDoneMsg](t, f.key("enter"))
	f.store.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.send(done)

	assert.Equal(t, "alice", f.model.user)
	assert.Equal(t, screenList, f.model.currentScreen)
}

func TestSignUp_ExistingUser(t *testing.T) {
	f := newFixture(t)

	f.key("a")
	f.key("ctrl+r")
	assert.True(t, f.model.auth.signUp)
	assert.True(t, strings.Contains(f.model.View(), "РЕГИСТРАЦИЯ"))

	f.typeText("alice")
	f.key("tab")
	f.typeText("pw")

	f.accounts.EXPECT().CreateUser(gomock.Any(), "alice", "pw").Return(service.ErrUserAlreadyExists)
	f.send(run[authDoneMsg](t, f.key("enter")))

	assert.Equal(t, screenAuth, f.model.currentScreen)
	assert.Equal(t, "Пользователь уже существует", f.model.auth.errMsg)
}

func TestSignOut(t *testing.T) {
	f := newFixture(t)
	f.model.user = "alice"

	f.accounts.EXPECT().SignOut(gomock.Any()).Return(nil)
	out := run[signedOutMsg](t, f.key("o"))
	f.store.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.send(out)

	assert.Empty(t, f.model.user)
}

func TestSignOut_Failure(t *testing.T) {
	f := newFixture(t)
	f.model.user = "alice"

	f.send(signedOutMsg{err: errors.New("disk full")})

	assert.Equal(t, "alice", f.model.user)
	assert.Equal(t, "disk full", f.model.errMsg)
}

// ── misc ──

func TestBuildInfoOverlay(t *testing.T) {
	f := newFixture(t)

	f.key("v")
	assert.Contains(t, f.model.View(), "1.0.0")

	f.key("esc")
	assert.False(t, f.model.showBuildInfo)
}

func TestQuitKeys(t *testing.T) {
	f := newFixture(t)

	assert.IsType(t, tea.QuitMsg{}, f.key("q")())
	assert.IsType(t, tea.QuitMsg{}, f.key("ctrl+c")())
}
