package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.handleProjectKey(msg); handled {
		return next, cmd
	}

	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.quit) {
		m.currentScreen = screenList
	}
	return m, nil
}

func (m appModel) viewDetail() string {
	p, ok := m.selected()
	if !ok {
		return renderPage("ПРОЕКТ", "Проект не выбран", "esc: назад")
	}

	var b strings.Builder
	b.WriteString("ID         │ " + p.ID + localMark(p) + "\n")
	b.WriteString("Название   │ " + valueOrDash(p.Title) + "\n")
	b.WriteString("Автор      │ " + valueOrDash(p.Author) + "\n")
	b.WriteString("Видимость  │ " + visibilityIcon(p) + "\n")
	b.WriteString("Создан     │ " + valueOrDash(p.CreatedAt) + "\n")
	b.WriteString("Изменён    │ " + valueOrDash(p.UpdatedAt) + "\n")
	b.WriteString("Превью     │ " + valueOrDash(p.DerivedPreviewText()) + "\n")
	if p.PreviewImage != nil {
		b.WriteString("Картинка   │ есть\n")
	}
	b.WriteString("\n")
	b.WriteString(valueOrDash(p.Desc) + "\n")

	m.writeFooter(&b)

	return renderPage("ПРОЕКТ", strings.TrimRight(b.String(), "\n"), "esc: назад │ p: видимость │ d: удалить │ c: копировать id")
}
