package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Open      key.Binding
	Search    key.Binding
	Filter    key.Binding
	Clear     key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	JumpTab   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// filter mode
	Toggle key.Binding
	Back   key.Binding

	// search mode
	Accept key.Binding

	// detail modal
	Close    key.Binding
	PrevTask key.Binding
	NextTask key.Binding
	OpenLink key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "right")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "categories")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear categories")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next bucket")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev bucket")),
		JumpTab:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "bucket")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Back:   key.NewBinding(key.WithKeys("esc", "f"), key.WithHelp("esc", "done")),

		Accept: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),

		Close:    key.NewBinding(key.WithKeys("esc", "q", "x"), key.WithHelp("esc", "close")),
		PrevTask: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←", "prev task")),
		NextTask: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→", "next task")),
		OpenLink: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "open link")),
	}
}
