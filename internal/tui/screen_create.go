package tui

import (
	"strings"

	"github.com/MKhiriev/go-project-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldPreview
	fieldDesc
	fieldCount
)

// createModel is the new project form: three single-line inputs and a
// description area. Focus index fieldDesc addresses the area.
type createModel struct {
	inputs []textinput.Model
	desc   textarea.Model
	focus  int
	public bool
	errMsg string
}

func newCreateModel() createModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 50
	title.Focus()

	author := textinput.New()
	author.Placeholder = "author"
	author.CharLimit = 100
	author.Width = 50

	preview := textinput.New()
	preview.Placeholder = "preview text (optional)"
	preview.CharLimit = 200
	preview.Width = 50

	desc := textarea.New()
	desc.Placeholder = "description"
	desc.SetWidth(50)
	desc.SetHeight(6)

	return createModel{
		inputs: []textinput.Model{title, author, preview},
		desc:   desc,
		public: true,
	}
}

func (c createModel) Init() tea.Cmd {
	return textinput.Blink
}

func (c *createModel) setAuthor(author string) {
	c.inputs[fieldAuthor].SetValue(author)
}

func (c createModel) payload() models.Project {
	return models.Project{
		Title:       strings.TrimSpace(c.inputs[fieldTitle].Value()),
		Author:      strings.TrimSpace(c.inputs[fieldAuthor].Value()),
		PreviewText: strings.TrimSpace(c.inputs[fieldPreview].Value()),
		Desc:        c.desc.Value(),
		Public:      models.Bool(c.public),
	}
}

func (m appModel) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.create = newCreateModel()
		m.currentScreen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.create.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.create.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.formPublic):
		m.create.public = !m.create.public
		return m, nil
	case key.Matches(msg, keys.submit):
		payload := m.create.payload()
		if payload.Title == "" {
			m.create.errMsg = "Название обязательно"
			return m, nil
		}
		m.create.errMsg = ""
		return m, cmdCreateProject(m.ctx, m.store, payload)
	}

	var cmd tea.Cmd
	m.create, cmd = m.create.updateInputs(msg)
	return m, cmd
}

func (c createModel) updateInputs(msg tea.Msg) (createModel, tea.Cmd) {
	var cmd tea.Cmd
	if c.focus == fieldDesc {
		c.desc, cmd = c.desc.Update(msg)
		return c, cmd
	}
	c.inputs[c.focus], cmd = c.inputs[c.focus].Update(msg)
	return c, cmd
}

func (c *createModel) moveFocus(step int) {
	if c.focus == fieldDesc {
		c.desc.Blur()
	} else {
		c.inputs[c.focus].Blur()
	}

	c.focus = (c.focus + step + fieldCount) % fieldCount

	if c.focus == fieldDesc {
		c.desc.Focus()
	} else {
		c.inputs[c.focus].Focus()
	}
}

func (c createModel) View() string {
	visibility := "публичный"
	if !c.public {
		visibility = "приватный"
	}

	var b strings.Builder
	b.WriteString("Название  │ [" + c.inputs[fieldTitle].View() + "]\n")
	b.WriteString("Автор     │ [" + c.inputs[fieldAuthor].View() + "]\n")
	b.WriteString("Превью    │ [" + c.inputs[fieldPreview].View() + "]\n")
	b.WriteString("Видимость │ " + visibility + "\n\n")
	b.WriteString("Описание\n")
	b.WriteString(c.desc.View() + "\n")

	if c.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+c.errMsg) + "\n")
	}

	return renderPage("НОВЫЙ ПРОЕКТ", strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab: след. поле │ ctrl+p: видимость │ ctrl+s: сохранить")
}
