package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	search      key.Binding
	refresh     key.Binding
	connect     key.Binding
	disconnect  key.Binding
	switchAcct  key.Binding
	newAccount  key.Binding
	add         key.Binding
	guide       key.Binding
	resetFilter key.Binding
	refreshFHE  key.Binding
	matchFHE    key.Binding
	copyID      key.Binding
	copyOwner   key.Binding
	submit      key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	left:        key.NewBinding(key.WithKeys("left", "h")),
	right:       key.NewBinding(key.WithKeys("right", "l")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:      key.NewBinding(key.WithKeys("/")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	connect:     key.NewBinding(key.WithKeys("c")),
	disconnect:  key.NewBinding(key.WithKeys("d")),
	switchAcct:  key.NewBinding(key.WithKeys("s")),
	newAccount:  key.NewBinding(key.WithKeys("n")),
	add:         key.NewBinding(key.WithKeys("a")),
	guide:       key.NewBinding(key.WithKeys("g")),
	resetFilter: key.NewBinding(key.WithKeys("x")),
	refreshFHE:  key.NewBinding(key.WithKeys("f")),
	matchFHE:    key.NewBinding(key.WithKeys("m")),
	copyID:      key.NewBinding(key.WithKeys("i")),
	copyOwner:   key.NewBinding(key.WithKeys("o")),
	submit:      key.NewBinding(key.WithKeys("ctrl+s")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}
