package tui

type confirmModel struct {
	id    string
	title string
}

func (m confirmModel) View() string {
	content := "Удалить проект \"" + m.title + "\"?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
