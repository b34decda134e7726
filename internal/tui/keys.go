package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	copy      key.Binding
	toSignup  key.Binding
	toLogin   key.Binding
	buildInfo key.Binding
	closeInfo key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	copy:      key.NewBinding(key.WithKeys("c")),
	toSignup:  key.NewBinding(key.WithKeys("ctrl+s")),
	toLogin:   key.NewBinding(key.WithKeys("esc", "ctrl+l")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	closeInfo: key.NewBinding(key.WithKeys("esc", "f1")),
}
