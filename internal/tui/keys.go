package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
	quit         key.Binding
	newItem      key.Binding
	togglePublic key.Binding
	delete       key.Binding
	copy         key.Binding
	filter       key.Binding
	refresh      key.Binding
	signIn       key.Binding
	signOut      key.Binding
	info         key.Binding
	yes          key.Binding
	no           key.Binding

	// form-only bindings; plain letters go to the focused input there
	submit     key.Binding
	formPublic key.Binding
	switchMode key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	quit:         key.NewBinding(key.WithKeys("q")),
	newItem:      key.NewBinding(key.WithKeys("n")),
	togglePublic: key.NewBinding(key.WithKeys("p")),
	delete:       key.NewBinding(key.WithKeys("d")),
	copy:         key.NewBinding(key.WithKeys("c")),
	filter:       key.NewBinding(key.WithKeys("f")),
	refresh:      key.NewBinding(key.WithKeys("r")),
	signIn:       key.NewBinding(key.WithKeys("a")),
	signOut:      key.NewBinding(key.WithKeys("o")),
	info:         key.NewBinding(key.WithKeys("v")),
	yes:          key.NewBinding(key.WithKeys("y")),
	no:           key.NewBinding(key.WithKeys("n", "esc")),

	submit:     key.NewBinding(key.WithKeys("ctrl+s")),
	formPublic: key.NewBinding(key.WithKeys("ctrl+p")),
	switchMode: key.NewBinding(key.WithKeys("ctrl+r")),
}
