// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authModel is the sign-in / sign-up form. ctrl+r switches between the two.
type authModel struct {
	inputs     []textinput.Model
	focus      int
	signUp     bool
	submitting bool
	errMsg     string
}

func newAuthModel() authModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return authModel{inputs: []textinput.Model{loginInput, passwordInput}}
}

func (a authModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.auth = newAuthModel()
		m.currentScreen = screenList
		return m, nil
	case key.Matches(msg, keys.switchMode):
		m.auth.signUp = !m.auth.signUp
		m.auth.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.auth.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.auth.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.auth.submitting {
			return m, nil
		}

		login := strings.TrimSpace(m.auth.inputs[0].Value())
		pass := m.auth.inputs[1].Value()
		if login == "" || pass == "" {
			m.auth.errMsg = "Логин и пароль обязательны"
			return m, nil
		}

		m.auth.errMsg = ""
		m.auth.submitting = true
		return m, cmdAuth(m.ctx, m.accounts, login, pass, m.auth.signUp)
	}

	var cmd tea.Cmd
	m.auth, cmd = m.auth.updateInputs(msg)
	return m, cmd
}

func (a authModel) updateInputs(msg tea.Msg) (authModel, tea.Cmd) {
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *authModel) moveFocus(step int) {
	a.inputs[a.focus].Blur()
	a.focus = (a.focus + step + len(a.inputs)) % len(a.inputs)
	a.inputs[a.focus].Focus()
}

func (a authModel) View() string {
	title, action := "ВХОД", "Войти"
	if a.signUp {
		title, action = "РЕГИСТРАЦИЯ", "Зарегистрироваться"
	}

	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин   │ [")
	b.WriteString(a.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(a.inputs[1].View())
	b.WriteString("]\n")

	if a.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if a.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+a.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ ctrl+r: вход/регистрация │ enter: подтвердить")
}
