package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-project-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const listTitleWidth = 40

func (m appModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.handleProjectKey(msg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.projects)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.selected(); ok {
			m.currentScreen = screenDetail
		}
	case key.Matches(msg, keys.newItem):
		m.create = newCreateModel()
		m.create.setAuthor(m.user)
		m.currentScreen = screenCreate
		return m, m.create.Init()
	case key.Matches(msg, keys.filter):
		m.publicOnly = !m.publicOnly
		m.loading = true
		return m, cmdLoadProjects(m.ctx, m.store, m.publicOnly)
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, cmdLoadProjects(m.ctx, m.store, m.publicOnly)
	case key.Matches(msg, keys.signIn):
		if m.user != "" {
			return m, nil
		}
		m.auth = newAuthModel()
		m.currentScreen = screenAuth
		return m, m.auth.Init()
	case key.Matches(msg, keys.signOut):
		if m.user == "" {
			return m, nil
		}
		return m, cmdSignOut(m.ctx, m.accounts)
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) viewList() string {
	var b strings.Builder

	if m.user != "" {
		b.WriteString("Пользователь: " + m.user + "\n")
	} else {
		b.WriteString("Пользователь: не выполнен вход\n")
	}
	if m.publicOnly {
		b.WriteString("Фильтр: только публичные\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading && len(m.projects) == 0:
		b.WriteString("Загрузка...\n")
	case len(m.projects) == 0:
		b.WriteString("Нет проектов\n")
	default:
		for i, p := range m.projects {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s %s  %s%s", cursor, visibilityIcon(p), fitText(p.Title, listTitleWidth), valueOrDash(p.Author), localMark(p))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	m.writeFooter(&b)

	hotKeys := "enter: открыть │ n: новый │ p: видимость │ d: удалить │ c: копировать id │ f: фильтр │ r: обновить"
	if m.user == "" {
		hotKeys += " │ a: вход"
	} else {
		hotKeys += " │ o: выход"
	}
	hotKeys += " │ v: о программе │ q: выход"

	return renderPage("ПРОЕКТЫ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) writeFooter(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}
}

func visibilityIcon(p models.Project) string {
	if p.IsPublic() {
		return "[pub]"
	}
	return "[prv]"
}

func localMark(p models.Project) string {
	if models.IsLocalID(p.ID) {
		return "  (локально)"
	}
	return ""
}
